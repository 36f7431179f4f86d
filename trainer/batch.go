package trainer

// Batches cuts indices into contiguous chunks of size batchSize.
// The last chunk is shorter when len(indices) is not a multiple of batchSize.
func Batches(indices []int, batchSize int) [][]int {
	if batchSize <= 0 {
		return nil
	}
	batches := make([][]int, 0, (len(indices)+batchSize-1)/batchSize)
	for start := 0; start < len(indices); start += batchSize {
		end := min(start+batchSize, len(indices))
		batches = append(batches, indices[start:end])
	}
	return batches
}
