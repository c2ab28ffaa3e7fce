package prooftree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordian-engine/prooftree/internal/pttrace"
	"github.com/gordian-engine/prooftree/ptmerkle"
)

// VerifierConfig is the configuration for [NewVerifier].
type VerifierConfig struct {
	Load LoadConfig

	Reduce ptmerkle.ReduceConfig

	// Optional; a no-op tracer provider is used when nil.
	TracerProvider pttrace.TracerProvider
}

// Verifier checks disclosed record lists against expected roots.
// A Verifier is safe for concurrent use.
type Verifier struct {
	log    *slog.Logger
	tracer pttrace.Tracer

	load    LoadConfig
	reducer *ptmerkle.Reducer
}

// NewVerifier returns a new Verifier.
func NewVerifier(log *slog.Logger, cfg VerifierConfig) *Verifier {
	return &Verifier{
		log:    log,
		tracer: pttrace.TracerFrom(cfg.TracerProvider),

		load:    cfg.Load,
		reducer: ptmerkle.NewReducer(cfg.Reduce),
	}
}

// Verify loads recs and reports whether their root equals expectedRoot.
//
// Records that cannot form a tree are an error,
// whereas a root mismatch is reported as false with a nil error.
// An empty record list never verifies.
//
// The context is only used for tracing;
// verification itself does not block.
func (v *Verifier) Verify(ctx context.Context, recs []Record, expectedRoot string) (bool, error) {
	_, span := v.tracer.Start(
		ctx, "verify records",
		pttrace.WithAttributes(pttrace.ExpectedRootAttr(expectedRoot)),
	)
	defer span.End()

	t, err := FromRecords(recs, v.load)
	if err != nil {
		err = fmt.Errorf("failed to build tree from records: %w", err)
		pttrace.SpanError(span, err)
		return false, err
	}

	if t.Len() == 0 {
		v.log.Info("Refusing to verify empty record list")
		span.SetAttributes(pttrace.LeafCountAttr(0), pttrace.ValidAttr(false))
		return false, nil
	}

	root, err := t.RootWith(v.reducer)
	if err != nil {
		err = fmt.Errorf("failed to compute root: %w", err)
		pttrace.SpanError(span, err)
		return false, err
	}

	redacted := t.Redacted().Count()
	ok := root == expectedRoot
	span.SetAttributes(
		pttrace.LeafCountAttr(t.Len()),
		pttrace.RedactedCountAttr(redacted),
		pttrace.RootAttr(root),
		pttrace.ValidAttr(ok),
	)

	if !ok {
		v.log.Info(
			"Root mismatch",
			"expected", expectedRoot,
			"got", root,
			"n_leaves", t.Len(),
			"n_redacted", redacted,
		)
		return false, nil
	}

	v.log.Debug(
		"Verified records",
		"root", root,
		"n_leaves", t.Len(),
		"n_redacted", redacted,
	)
	return true, nil
}
