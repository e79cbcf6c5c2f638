package bench

// Result bundles one input size with the elapsed time of every benchmarked
// algorithm. Times are totals across all repeats, in seconds.
type Result struct {
	Size          int     `json:"size" msgpack:"size"`
	InsertionSort float64 `json:"insertion_sort" msgpack:"insertion_sort"`
	MergeSort     float64 `json:"merge_sort" msgpack:"merge_sort"`
	SortInPlace   float64 `json:"sort_in_place" msgpack:"sort_in_place"`
	SortedCopy    float64 `json:"sorted_copy" msgpack:"sorted_copy"`
}
