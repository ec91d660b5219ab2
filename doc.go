// Package lvframe is a small labeled-table toolkit: dense grids of one
// element type with optional column keys and an optional row index, plain
// CSV input and output, and box-drawn terminal rendering.
//
// Packages:
//
//	grid/        Grid[T] storage contract and the row-major Dense[T]
//	frame/       Frame[T]: label axes kept in lockstep with the grid across
//	             insert, remove, concatenate, merge and slice; rendering
//	csvio/       line-driven CSV ingestion (header and index column optional),
//	             afero-backed file helpers and a round-trip writer
//	cmd/lvframe  show, merge and slice CSV files from the shell
//
// Quick start:
//
//	f, err := csvio.ReadPath("prices.csv", csvio.WithIndexColumn(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	jan, _ := f.SliceRowsByLabel("2024-01-01", "2024-01-31")
//	_ = jan.Print(os.Stdout, 10)
//
// Errors are sentinel values (frame.ErrDuplicateLabel, csvio.ErrNotFound,
// ...) matched with errors.Is; no public function panics on bad input.
// Frames are not safe for concurrent mutation.
package lvframe
