package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapteeRequest(t *testing.T) {
	assert.Equal(t, "Request from the client", Adaptee{}.GetRequest())
}

func TestAdapterReformatsAdapteeResult(t *testing.T) {
	var target Target = New(Adaptee{})

	assert.Equal(t, "This is the 'Request from the client'", target.Request())
}
