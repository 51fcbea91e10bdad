package models

import (
	"regexp"
	"slices"
	"strings"
)

// MessageTag is shown when a tag name is not valid.
const MessageTag = "Tags names should be alphanumeric"

var tagRegex = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)

// Tag is a free-form label attached to an entity.
type Tag struct {
	value string
}

// NewTag validates a tag name.
func NewTag(raw string) (Tag, error) {
	value := strings.TrimSpace(raw)
	if !tagRegex.MatchString(value) {
		return Tag{}, invalid("tag", MessageTag)
	}
	return Tag{value: value}, nil
}

func (t Tag) String() string { return t.value }

// Equal reports whether both tags have the same name.
func (t Tag) Equal(other Tag) bool { return t.value == other.value }

// TagSet is an immutable, deduplicated set of tags kept in sorted order.
// The zero value is an empty set.
type TagSet struct {
	tags []Tag
}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	out = slices.CompactFunc(out, Tag.Equal)
	return TagSet{tags: out}
}

// ParseTags validates every raw tag name and builds a set.
func ParseTags(raw []string) (TagSet, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		tag, err := NewTag(r)
		if err != nil {
			return TagSet{}, err
		}
		tags = append(tags, tag)
	}
	return NewTagSet(tags...), nil
}

// Tags returns an owned copy of the tags.
func (s TagSet) Tags() []Tag { return slices.Clone(s.tags) }

// Strings returns the tag names in order.
func (s TagSet) Strings() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = t.value
	}
	return out
}

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s.tags) }

// Contains reports whether the set holds tag.
func (s TagSet) Contains(tag Tag) bool {
	_, found := slices.BinarySearchFunc(s.tags, tag, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	return found
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool {
	return slices.EqualFunc(s.tags, other.tags, Tag.Equal)
}

// String renders the set as "[a][b]".
func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s.tags {
		b.WriteString("[")
		b.WriteString(t.value)
		b.WriteString("]")
	}
	return b.String()
}
