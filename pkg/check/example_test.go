package check_test

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/guard/pkg/check"
	gferrors "github.com/vnykmshr/guard/pkg/common/errors"
	"github.com/vnykmshr/guard/pkg/metrics"
)

type account struct {
	owner   string
	balance int
	closed  bool
}

func (a *account) withdraw(amount int) error {
	if err := check.IsTrue(amount > 0, "amount must be positive"); err != nil {
		return err
	}
	if err := check.State(!a.closed, "account is closed"); err != nil {
		return err
	}
	a.balance -= amount
	return nil
}

// Example demonstrates guard clauses at the top of a method.
func Example() {
	acct := &account{owner: "ada", balance: 100}

	fmt.Println(acct.withdraw(-5))

	acct.closed = true
	err := acct.withdraw(10)
	fmt.Println(err)
	fmt.Println(errors.Is(err, gferrors.ErrInvalidState))

	// Output:
	// amount must be positive
	// account is closed
	// true
}

// ExampleHasText shows the default message of a check.
func ExampleHasText() {
	fmt.Println(check.HasText(" a "))
	fmt.Println(check.HasText("  "))

	// Output:
	// <nil>
	// this string argument must have text; it cannot be null, empty, or blank
}

// ExampleNotEmpty shows the slice and map forms of the emptiness check.
func ExampleNotEmpty() {
	fmt.Println(check.NotEmpty([]int{}))
	fmt.Println(check.NotEmptyMap(map[string]string{"k": "v"}))

	// Output:
	// this array must not be empty: it must contain at least 1 element
	// <nil>
}

// ExampleIsInstanceOf shows the generated message and its prefix.
func ExampleIsInstanceOf() {
	fmt.Println(check.IsInstanceOf[string](5))
	fmt.Println(check.IsInstanceOf[fmt.Stringer](nil, "printer: "))

	// Output:
	// Object of class 'int' must be an instance of 'string'
	// printer: Object of class '[null]' must be an instance of 'fmt.Stringer'
}

// ExampleFirst reports the first failing check.
func ExampleFirst() {
	name, tags := "   ", []string{}

	err := check.First(
		check.HasLength(name),
		check.HasText(name, "name is blank"),
		check.NotEmpty(tags, "at least one tag is required"),
	)
	fmt.Println(err)

	// Output:
	// name is blank
}

// ExampleRecorder counts checks in a custom Prometheus registry.
func ExampleRecorder() {
	registry := prometheus.NewRegistry()
	rec := check.NewRecorderWithConfig("signup", metrics.Config{
		Enabled:  true,
		Registry: registry,
	}, nil)

	_ = rec.Record(check.HasText("ada"))
	_ = rec.Record(check.NotNull(nil))

	families, _ := registry.Gather()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Printf("%s %.0f\n", mf.GetName(), m.GetCounter().GetValue())
		}
	}

	// Output:
	// guard_check_evaluated_total 2
	// guard_check_violations_total 1
}
