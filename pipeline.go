package conditionalget

import "net/http"

// Processor is a single stage working on a produced response.
// It returns the response to hand to the next stage, which may be res
// itself, mutated or not.
type Processor interface {
	Process(r *http.Request, res *http.Response) *http.Response
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(r *http.Request, res *http.Response) *http.Response

// Process implements Processor.
func (f ProcessorFunc) Process(r *http.Request, res *http.Response) *http.Response {
	return f(r, res)
}

// Pipeline runs its stages in order.
type Pipeline []Processor

// Process implements Processor.
func (p Pipeline) Process(r *http.Request, res *http.Response) *http.Response {
	for _, stage := range p {
		res = stage.Process(r, res)
	}
	return res
}
