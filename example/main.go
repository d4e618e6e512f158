//go:build !scg_noerrhooks

// Package main demonstrates usage of the scg-asyncerr package.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/next-trace/scg-asyncerr/asyncerr"
	"github.com/next-trace/scg-asyncerr/contract"
)

// failureCounter is a custom observer reacting with metrics instead of
// logs: every wrapped error bumps a counter labeled by its annotation.
type failureCounter struct {
	seen *prometheus.CounterVec
}

func (h *failureCounter) OnError(err contract.Error[error]) {
	annotation, _ := err.Context()
	h.seen.WithLabelValues(annotation).Inc()
}

func fetchBalance(account string) asyncerr.Future[int] {
	return func(context.Context) (int, error) {
		if account == "unknown" {
			return 0, errors.New("account not found")
		}
		return 1250, nil
	}
}

func applyFee(balance int) asyncerr.Future[int] {
	return func(context.Context) (int, error) {
		if balance < 2000 {
			return 0, fmt.Errorf("balance %d below fee threshold", balance)
		}
		return balance - 2000, nil
	}
}

func main() {
	registry := prometheus.NewRegistry()
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "asyncerr_failures_total",
		Help: "Context-wrapped errors observed, by annotation.",
	}, []string{"context"})
	registry.MustRegister(failures)

	// Default logging observer plus a metrics observer; both fire, in
	// registration order, once per wrapped error.
	asyncerr.RegisterHook[error](&asyncerr.LogHook[error]{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	asyncerr.RegisterHook[error](&failureCounter{seen: failures})
	asyncerr.EnableHookTimestamps()

	pipeline := asyncerr.Then(
		asyncerr.WithContext(fetchBalance("acct-42"), func(err error) string {
			return "fetching balance for acct-42"
		}),
		func(balance int) asyncerr.Future[int] {
			return asyncerr.WithContext(applyFee(balance), func(err error) string {
				return fmt.Sprintf("applying fee to balance %d", balance)
			})
		},
	)

	if _, err := pipeline.Await(context.Background()); err != nil {
		var wrapped *asyncerr.Error[error]
		if errors.As(err, &wrapped) {
			annotation, _ := wrapped.Context()
			fmt.Println("annotation:", annotation)
			fmt.Println("cause:", wrapped.Inner())
		}
		fmt.Println("rendered:", err)
	}

	families, err := registry.Gather()
	if err != nil {
		fmt.Println("gather:", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fmt.Printf("%s%v = %v\n", family.GetName(), labels(metric), metric.GetCounter().GetValue())
		}
	}
}

func labels(m *dto.Metric) []string {
	out := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		out = append(out, l.GetName()+"="+l.GetValue())
	}
	return out
}
