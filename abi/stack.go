package abi

// Frame is a tuple region being decoded.
type Frame struct {
	Type Type

	// Base is the absolute position of the region's first head word. Offsets
	// read from the region's head are relative to it.
	Base int

	// Index is the field whose head word is being read.
	Index int
}

// Stack holds the frames of the regions being decoded, outermost first.
type Stack []*Frame

func (s *Stack) Push(f *Frame) {
	*s = append(*s, f)
}

func (s *Stack) Top() *Frame {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() (err error) {
	if s.Top() == nil {
		return Error.New("no frame on stack")
	}

	*s = (*s)[:len(*s)-1]

	return nil
}

// Path returns the field indexes from the outermost frame to the top. [2 0 1]
// is field 1 of element 0 of top-level field 2.
func (s *Stack) Path() []int {
	path := make([]int, len(*s))
	for i, f := range *s {
		path[i] = f.Index
	}

	return path
}
