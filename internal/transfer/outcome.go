package transfer

// Outcome is the result of transferring one pair. It is one of
// Transferred, AlreadyInPlace or Failed.
type Outcome interface {
	outcome()
}

// Transferred means the file now lives at Path (or would, in a dry run).
type Transferred struct {
	Path string
}

// AlreadyInPlace means the source already is the destination file.
type AlreadyInPlace struct {
	Path string
}

// Failed means the pair could not be transferred.
type Failed struct {
	Err error
}

func (Transferred) outcome()    {}
func (AlreadyInPlace) outcome() {}
func (Failed) outcome()         {}

// Counts tallies outcomes over a batch.
type Counts struct {
	Transferred    int
	AlreadyInPlace int
	Failed         int
}

// Add records one outcome.
func (c *Counts) Add(out Outcome) {
	switch out.(type) {
	case Transferred:
		c.Transferred++
	case AlreadyInPlace:
		c.AlreadyInPlace++
	case Failed:
		c.Failed++
	default:
		panic("transfer: unknown outcome type")
	}
}

// Total returns the number of outcomes recorded.
func (c Counts) Total() int {
	return c.Transferred + c.AlreadyInPlace + c.Failed
}
