package telemetry

import "time"

// Track runs fn and observes its duration into the request duration histogram
// labelled by endpoint and outcome. The observation happens exactly once on
// every exit path, including a panic, which is re-raised. A failed fn also
// increments the global error counter; its error is returned unchanged.
func Track(p Producer, endpoint string, fn func() error) (err error) {
	start := time.Now()
	outcome := OutcomeError
	defer func() {
		if outcome == OutcomeError {
			p.IncrementCounter(ErrorsTotal, 1, nil)
		}
		p.Observe(RequestDurationSeconds, time.Since(start).Seconds(), Labels{
			LabelEndpoint: endpoint,
			LabelStatus:   outcome,
		})
	}()

	if err = fn(); err != nil {
		return err
	}
	outcome = OutcomeSuccess
	return nil
}
