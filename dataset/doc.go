/*
Package dataset loads, cleans and partitions the e-commerce transactions the
benchmark drives through each target.

Records come either from a CSV export (LoadCSV, with the cleaning rules the
raw dataset needs: string customer IDs, zeroed missing numerics, merged
transaction timestamps) or from the seeded synthetic generator (Generate),
which produces deterministic data for runs without the source file.

NewSplit carves a dataset into the slices the workload phases consume:

	records, _ := dataset.LoadCSV("Ecomm.csv")
	split := dataset.NewSplit(records, 10, 1000, 2000)
	// split.Singles -> single-op insert phase
	// split.Batch   -> chunked batch insert phase
	// split.Bulk    -> bulk load phase
*/
package dataset
