package arr

import (
	"net/url"
	"strconv"
	"time"
)

// Sort directions accepted by paged endpoints
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// PageParams selects a page of a paged endpoint. Zero values are omitted
// so the manager applies its own defaults.
type PageParams struct {
	Page          int
	PageSize      int
	SortKey       string
	SortDirection string
}

// Values encodes the params as a query
func (p PageParams) Values() url.Values {
	params := url.Values{}
	if p.Page > 0 {
		params.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.SortKey != "" {
		params.Set("sortKey", p.SortKey)
	}
	if p.SortDirection != "" {
		params.Set("sortDirection", p.SortDirection)
	}
	return params
}

// QueueParams selects a page of the activity queue
type QueueParams struct {
	PageParams
	// IncludeUnknown adds downloads not matched to any collection item.
	IncludeUnknown bool
	// IncludeItem embeds the related collection item (series, movie,
	// author, artist) in each record.
	IncludeItem bool
}

// values encodes the params for a manager whose collection item is named
// item, e.g. "Series" gives includeUnknownSeriesItems and includeSeries.
func (p QueueParams) values(item string) url.Values {
	params := p.PageParams.Values()
	if p.IncludeUnknown {
		params.Set("includeUnknown"+item+"Items", "true")
	}
	if p.IncludeItem {
		params.Set("include"+item, "true")
	}
	return params
}

// CalendarParams builds the query of the calendar endpoint. Zero times are
// omitted.
func CalendarParams(start, end time.Time, unmonitored bool) url.Values {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		params.Set("end", end.UTC().Format(time.RFC3339))
	}
	params.Set("unmonitored", strconv.FormatBool(unmonitored))
	return params
}

// DeleteParams builds the query shared by the delete endpoints of
// collection items.
func DeleteParams(deleteFiles, addExclusion bool, exclusionKey string) url.Values {
	params := url.Values{}
	params.Set("deleteFiles", strconv.FormatBool(deleteFiles))
	params.Set(exclusionKey, strconv.FormatBool(addExclusion))
	return params
}

// Int64Path joins a resource path and an id
func Int64Path(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10)
}
