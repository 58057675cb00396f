package verdict

import (
	"fmt"

	"goldengate/internal/acceptance"
)

// outcome enumerates the three terminal states of the decision machine.
type outcome int

const (
	outcomeAccepted outcome = iota
	outcomeRejectedRollback
	outcomeRejectedEscalate
)

// Decide maps per-metric results, the declared impact class, and the
// secondary-metric mode to a Verdict. A primary metric fails when its check
// fails or it could not be computed; a secondary metric fails only on a
// computed value outside its bound, so not-applicable secondaries (no jitter
// runs) are not failures.
func Decide(results []acceptance.Result, impact ImpactClass, mode SecondaryMode) Verdict {
	var primaryFailures, secondaryFailures []acceptance.Result
	for _, r := range results {
		switch {
		case r.Primary && (!r.Computable || !r.Passed):
			primaryFailures = append(primaryFailures, r)
		case !r.Primary && r.Computable && !r.Passed:
			secondaryFailures = append(secondaryFailures, r)
		}
	}

	state := outcomeAccepted
	switch {
	case len(primaryFailures) > 0:
		if impact == ImpactExpected {
			state = outcomeRejectedEscalate
		} else {
			state = outcomeRejectedRollback
		}
	case mode == SecondaryStrict && len(secondaryFailures) > 0:
		// Secondary failures never pick rollback: the change is not shown
		// inferior on any primary metric, so it goes to review instead.
		state = outcomeRejectedEscalate
	}

	v := Verdict{Results: results}
	switch state {
	case outcomeAccepted:
		v.Status = StatusAccepted
		v.Action = ActionPromote
		for _, r := range secondaryFailures {
			v.Reasons = append(v.Reasons, advisoryReason(r))
		}
	case outcomeRejectedRollback:
		v.Status = StatusRejected
		v.Action = ActionRollback
		v.Reasons = failureReasons(primaryFailures)
	case outcomeRejectedEscalate:
		v.Status = StatusRejected
		v.Action = ActionEscalate
		v.Reasons = failureReasons(primaryFailures)
		if len(primaryFailures) == 0 {
			v.Reasons = failureReasons(secondaryFailures)
		}
	}
	return v
}

func failureReasons(failures []acceptance.Result) []string {
	reasons := make([]string, 0, len(failures))
	for _, r := range failures {
		if !r.Computable {
			reasons = append(reasons, fmt.Sprintf("%s not computable (sample size %d)", r.Name, r.SampleSize))
			continue
		}
		reasons = append(reasons, fmt.Sprintf("%s = %.4f violates %s", r.Name, r.Value, r.Threshold))
	}
	return reasons
}

func advisoryReason(r acceptance.Result) string {
	return fmt.Sprintf("advisory: %s = %.4f outside %s", r.Name, r.Value, r.Threshold)
}
