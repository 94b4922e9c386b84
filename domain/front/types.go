package front

// Point is a single solution in objective space.
type Point []float64

// Front is an ordered set of objective-space points. A reference front and
// a single algorithm run's approximation set share this representation.
type Front []Point

// Execution is one algorithm run's output approximation set, read as one
// blank-line-delimited block of a multi-execution solution file.
type Execution = Front
