package mesh

// CleanConnectivity reshapes a raw flat connectivity array into one index
// tuple per element. Providers encode elements at a fixed stride and, for
// anything larger than a point element, inject a leading size/type marker
// ahead of the node ids; the marker is dropped here. Known informally as the
// "spiderweb fix": left in place, the stray prefix values connect every
// element back to low-numbered points and the rendered mesh collapses into a
// web of bogus edges.
//
// Pure function; the input slice is not retained.
func CleanConnectivity(flat []int, count int) ([][]int, error) {
	if count == 0 && len(flat) == 0 {
		return nil, nil
	}
	if count <= 0 {
		return nil, &MalformedConnectivityError{
			Length: len(flat), Count: count,
			Reason: "non-positive element count",
		}
	}
	if len(flat)%count != 0 {
		return nil, &MalformedConnectivityError{
			Length: len(flat), Count: count,
			Reason: "length does not divide evenly",
		}
	}
	stride := len(flat) / count
	if stride == 0 {
		return nil, &MalformedConnectivityError{
			Length: len(flat), Count: count,
			Reason: "empty tuples",
		}
	}

	tuples := make([][]int, count)
	for i := 0; i < count; i++ {
		chunk := flat[i*stride : (i+1)*stride]
		if stride > 1 {
			chunk = chunk[1:] // skip the per-element prefix
		}
		tuple := make([]int, len(chunk))
		copy(tuple, chunk)
		tuples[i] = tuple
	}
	return tuples, nil
}
