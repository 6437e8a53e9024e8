package service

// Result is the uniform outcome of a workflow operation. Callers always
// get a structured reason list, never a raw error from deeper layers.
type Result struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

// Ok returns a successful result
func Ok() Result {
	return Result{Success: true}
}

// Fail returns a failed result carrying the given reasons
func Fail(reasons ...string) Result {
	return Result{Success: false, Errors: reasons}
}
