// Package dto holds the request/filter types exchanged between the
// controller and service layers.
package dto

import (
	"net/url"
	"strconv"
)

// BlogFilter optional query filters for blog listings
type BlogFilter struct {
	Category  *string
	Published *bool
}

// ProjectFilter optional query filters for project listings
type ProjectFilter struct {
	Category *string
	Featured *bool
}

// CaseStudyFilter optional query filters for case study listings
type CaseStudyFilter struct {
	Category *string
	Featured *bool
}

// TechnologyFilter optional query filters for technology listings
type TechnologyFilter struct {
	Category *string
}

// GalleryFilter optional query filters for gallery listings
type GalleryFilter struct {
	Category  *string
	Featured  *bool
	Published *bool
}

// OurStoryFilter optional query filters for our-story listings
type OurStoryFilter struct {
	Published *bool
}

// SuccessStoryFilter optional query filters for success story listings
type SuccessStoryFilter struct {
	Category *string
}

// ContactFilter optional query filters for the admin contact listing
type ContactFilter struct {
	Status *string
}

// fmtStr render an optional string for cache keys.
func fmtStr(v *string) string {
	if v == nil {
		return "-"
	}

	return *v
}

// fmtBool render an optional bool for cache keys.
func fmtBool(v *bool) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatBool(*v)
}

// String stable representation used as a cache key component.
func (f BlogFilter) String() string {
	return fmtStr(f.Category) + "|" + fmtBool(f.Published)
}

// String stable representation used as a cache key component.
func (f ProjectFilter) String() string {
	return fmtStr(f.Category) + "|" + fmtBool(f.Featured)
}

// String stable representation used as a cache key component.
func (f CaseStudyFilter) String() string {
	return fmtStr(f.Category) + "|" + fmtBool(f.Featured)
}

// String stable representation used as a cache key component.
func (f TechnologyFilter) String() string {
	return fmtStr(f.Category)
}

// String stable representation used as a cache key component.
func (f GalleryFilter) String() string {
	return fmtStr(f.Category) + "|" + fmtBool(f.Featured) + "|" + fmtBool(f.Published)
}

// String stable representation used as a cache key component.
func (f OurStoryFilter) String() string {
	return fmtBool(f.Published)
}

// String stable representation used as a cache key component.
func (f SuccessStoryFilter) String() string {
	return fmtStr(f.Category)
}

// strParam returns a pointer to the value when the parameter is present
// and non-empty.
func strParam(v url.Values, key string) *string {
	if s := v.Get(key); s != "" {
		return &s
	}

	return nil
}

// boolParam returns a pointer to the parsed value when the parameter is
// present. Any value other than "true" counts as false.
func boolParam(v url.Values, key string) *bool {
	if _, ok := v[key]; !ok {
		return nil
	}

	b := v.Get(key) == "true"
	return &b
}

// featuredParam mirrors the visible behavior of the public site: only an
// explicit "featured=true" narrows the listing, anything else is ignored.
func featuredParam(v url.Values) *bool {
	if v.Get("featured") == "true" {
		t := true
		return &t
	}

	return nil
}

// ParseBlogFilter build a blog filter from query parameters
func ParseBlogFilter(v url.Values) BlogFilter {
	return BlogFilter{
		Category:  strParam(v, "category"),
		Published: boolParam(v, "published"),
	}
}

// ParseProjectFilter build a project filter from query parameters
func ParseProjectFilter(v url.Values) ProjectFilter {
	return ProjectFilter{
		Category: strParam(v, "category"),
		Featured: featuredParam(v),
	}
}

// ParseCaseStudyFilter build a case study filter from query parameters
func ParseCaseStudyFilter(v url.Values) CaseStudyFilter {
	return CaseStudyFilter{
		Category: strParam(v, "category"),
		Featured: featuredParam(v),
	}
}

// ParseTechnologyFilter build a technology filter from query parameters
func ParseTechnologyFilter(v url.Values) TechnologyFilter {
	return TechnologyFilter{
		Category: strParam(v, "category"),
	}
}

// ParseGalleryFilter build a gallery filter from query parameters
func ParseGalleryFilter(v url.Values) GalleryFilter {
	return GalleryFilter{
		Category:  strParam(v, "category"),
		Featured:  featuredParam(v),
		Published: boolParam(v, "published"),
	}
}

// ParseOurStoryFilter build an our-story filter from query parameters
func ParseOurStoryFilter(v url.Values) OurStoryFilter {
	return OurStoryFilter{
		Published: boolParam(v, "published"),
	}
}

// ParseSuccessStoryFilter build a success story filter from query parameters
func ParseSuccessStoryFilter(v url.Values) SuccessStoryFilter {
	return SuccessStoryFilter{
		Category: strParam(v, "category"),
	}
}

// ParseContactFilter build a contact filter from query parameters
func ParseContactFilter(v url.Values) ContactFilter {
	return ContactFilter{
		Status: strParam(v, "status"),
	}
}
