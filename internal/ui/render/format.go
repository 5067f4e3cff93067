// Package render provides formatting functions for image search results.
package render

import (
	"fmt"

	"github.com/ijuttt/imgsearch/internal/model"
)

// Score formats a search result caption, e.g. "Score: 0.987".
func Score(score float64) string {
	return fmt.Sprintf(ScoreFormat, score)
}

// DatasetCaption formats a dataset item caption, e.g. "Image 12.jpg".
func DatasetCaption(imageID int) string {
	return fmt.Sprintf(DatasetCaptionFormat, imageID)
}

// DatasetHeading formats the dataset count heading.
func DatasetHeading(count int) string {
	return fmt.Sprintf(DatasetHeadingFormat, count)
}

// SearchAlt is the alternative text of a search result image.
func SearchAlt(r model.ImageResult) string {
	return fmt.Sprintf("Search result %d", r.ImageID)
}

// DatasetAlt is the alternative text of a dataset image.
func DatasetAlt(r model.ImageResult) string {
	return fmt.Sprintf("Dataset image %d", r.ImageID)
}

// ResultLine formats a result for line-oriented output:
// "<caption>\t<url>", optionally colored.
func ResultLine(caption, url string, color bool) string {
	if color {
		caption = Bold + caption + Reset
		url = Cyan + url + Reset
	}
	return caption + "\t" + url
}
