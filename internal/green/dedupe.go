package green

import "github.com/empathycom/circletron/internal/circleci"

// Dedupe collapses a pipeline's workflow list to one representative per
// logical name, keeping the highest-ranked run of each. Reruns replace the
// stored entry only when strictly higher ranked, so when reruns tie the
// first one seen wins, and output order follows first appearance of each
// name in the input.
func Dedupe(workflows []circleci.Workflow) []circleci.Workflow {
	if len(workflows) == 0 {
		return nil
	}

	index := make(map[string]int, len(workflows))
	result := make([]circleci.Workflow, 0, len(workflows))
	for _, wf := range workflows {
		at, seen := index[wf.Name]
		if !seen {
			index[wf.Name] = len(result)
			result = append(result, wf)
			continue
		}
		if Rank(wf.Status) > Rank(result[at].Status) {
			result[at] = wf
		}
	}
	return result
}
