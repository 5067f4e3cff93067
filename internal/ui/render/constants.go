// Package render provides formatting functions for image search results.
package render

// -----------------------------------------------------------------------------
// Titles and Labels
// -----------------------------------------------------------------------------

const (
	// SearchTitle is the search view header.
	SearchTitle = "FAISS Image Search"

	// DatasetTitle is the dataset view header.
	DatasetTitle = "FAISS Image Search - Dataset"

	// DatasetLinkLabel navigates from search to the dataset view.
	DatasetLinkLabel = "View Dataset Here"

	// BackLinkLabel navigates from the dataset view back to search.
	BackLinkLabel = "← Back to Search"

	// SearchButtonLabel is the search button text.
	SearchButtonLabel = "Search"

	// QueryPlaceholder is shown in the empty search input.
	QueryPlaceholder = "query goes here"
)

// -----------------------------------------------------------------------------
// Format Strings
// -----------------------------------------------------------------------------

const (
	// ScoreFormat renders a relevance score with three decimals.
	ScoreFormat = "Score: %.3f"

	// DatasetCaptionFormat names a dataset image by id.
	DatasetCaptionFormat = "Image %d.jpg"

	// DatasetHeadingFormat counts loaded dataset images.
	DatasetHeadingFormat = "All Dataset Images (%d images)"
)
