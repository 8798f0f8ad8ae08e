/*
Package tracing provides lightweight request and run tracing.

# Overview

Every HTTP request gets a span; the evaluator opens a child span per script
run. Finished spans are buffered and logged through zap by a collector
goroutine. Trace and span identifiers are ULIDs from the shared id package.

# Usage

	tracer := tracing.New("dsaviz", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "run")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
	span.SetTag("kind", "bst")

# Propagation

  - X-Trace-ID: identifier for the entire request flow, honored when sent
    by the client and always echoed in the response
  - X-Span-ID: identifier for the current operation
*/
package tracing
