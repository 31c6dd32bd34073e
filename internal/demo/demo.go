// Package demo wires the six pattern examples into a runnable catalog. Each
// demo writes its lines to the given writer; the canonical order of All
// determines the sampler's full transcript.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/stefanomuraro/design-patterns/internal/adapter"
	"github.com/stefanomuraro/design-patterns/internal/decorator"
	"github.com/stefanomuraro/design-patterns/internal/prototype"
	"github.com/stefanomuraro/design-patterns/internal/singleton"
	"github.com/stefanomuraro/design-patterns/internal/state"
	"github.com/stefanomuraro/design-patterns/internal/strategy"
	"github.com/stefanomuraro/design-patterns/pkg/logging"
)

// Demo is one runnable pattern example.
type Demo struct {
	Name    string
	Summary string
	Run     func(w io.Writer) error
}

// All returns the six demos in the sampler's canonical order.
func All() []Demo {
	return []Demo{
		{
			Name:    "singleton",
			Summary: "one shared instance behind a single accessor",
			Run:     runSingleton,
		},
		{
			Name:    "prototype",
			Summary: "new objects created by copying an existing instance",
			Run:     runPrototype,
		},
		{
			Name:    "adapter",
			Summary: "an incompatible operation behind the expected signature",
			Run:     runAdapter,
		},
		{
			Name:    "decorator",
			Summary: "a price-rewriting wrapper that keeps the item's interface",
			Run:     runDecorator,
		},
		{
			Name:    "state",
			Summary: "behavior delegated to a replaceable state that advances itself",
			Run:     runState,
		},
		{
			Name:    "strategy",
			Summary: "interchangeable sorting algorithms swappable at runtime",
			Run:     runStrategy,
		},
	}
}

// Get looks a demo up by name.
func Get(name string) (Demo, bool) {
	for _, d := range All() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the demo names in canonical order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// RunAll executes the given demos in order, stopping at the first failure.
func RunAll(w io.Writer, demos []Demo) error {
	for _, d := range demos {
		logging.Debug("demo", "running %s", d.Name)
		if err := d.Run(w); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}

func runSingleton(w io.Writer) error {
	first := singleton.Instance()
	first.Name = "sape"

	second := singleton.Instance()

	fmt.Fprintln(w, first.Name)
	fmt.Fprintln(w, second.Name)
	return nil
}

func runPrototype(w io.Writer) error {
	original := &prototype.Person{Name: "Pepe", Age: 30}
	clone := original.Clone()

	fmt.Fprintln(w, clone.Name)
	return nil
}

func runAdapter(w io.Writer) error {
	target := adapter.New(adapter.Adaptee{})

	fmt.Fprintln(w, target.Request())
	return nil
}

func runDecorator(w io.Writer) error {
	offer := decorator.NewSpecialOffer(decorator.NewCar())
	offer.Offer = "30% OFF"
	offer.DiscountPercentage = 30

	fmt.Fprintf(w, "%s on %s cars, new price is: $%s\n",
		offer.Offer, offer.Type(), decorator.FormatPrice(offer.Price()))
	return nil
}

func runState(w io.Writer) error {
	machine := state.NewMachine(state.StateOne)

	for i := 0; i < 3; i++ {
		out, err := machine.Request()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

func runStrategy(w io.Writer) error {
	ctx := strategy.NewContext()

	for _, s := range []strategy.Strategy{strategy.Ascending{}, strategy.Descending{}} {
		ctx.SetStrategy(s)
		sorted, err := ctx.Execute([]int{3, 1, 5, 2, 4})
		if err != nil {
			return err
		}
		fmt.Fprintln(w, join(sorted))
	}
	return nil
}

// join renders a sequence with each element followed by ", ", trailing
// separator included.
func join(values []int) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%d, ", v)
	}
	return b.String()
}
