package layout

import (
	"github.com/vk/tfsheet/internal/flatten"
)

// Group is a maximal run of consecutive records that merge into one cell at
// a given level. Start indexes into the record sequence; Length is the
// row-span.
type Group struct {
	Start  int
	Length int
	// Segment is the shared level segment. For name groups its index is
	// meaningless; for index groups it carries the sequence position when
	// HasIndex is set.
	Segment flatten.PathSegment
}

// Level holds the two merge families of one nesting level.
type Level struct {
	Name  []Group
	Index []Group
}

// Layout is the merge plan for one record sequence.
type Layout struct {
	// MaxDepth is the deepest path length; the name grid needs
	// MaxDepth*2 sub-columns.
	MaxDepth int
	// Levels has one entry per level below MaxDepth.
	Levels []Level
	// ColSpans has one entry per record: the number of trailing unused
	// sub-columns the record's last name cell must additionally span.
	// Zero means the record fills the name grid exactly.
	ColSpans []int
}

// Compute derives the merge plan for records. An empty sequence yields a
// layout with MaxDepth 0 and no groups.
func Compute(records []flatten.LeafRecord) Layout {
	l := Layout{}
	for _, rec := range records {
		if d := rec.Depth(); d > l.MaxDepth {
			l.MaxDepth = d
		}
	}
	if l.MaxDepth == 0 {
		return l
	}

	l.Levels = make([]Level, l.MaxDepth)
	for level := 0; level < l.MaxDepth; level++ {
		l.Levels[level] = computeLevel(records, level)
	}

	l.ColSpans = make([]int, len(records))
	total := l.MaxDepth * 2
	for i, rec := range records {
		occupied := rec.Depth() * 2
		if last := rec.Path[rec.Depth()-1]; !last.HasIndex {
			// A leaf without a sequence position has no index cell; its
			// name cell absorbs that sub-column too.
			occupied--
		}
		l.ColSpans[i] = total - occupied
	}
	return l
}

// computeLevel scans the records once and emits the maximal name and index
// runs at the given level. Records that terminate above the level belong to
// no group and break any open run.
func computeLevel(records []flatten.LeafRecord, level int) Level {
	var out Level
	openName, openIndex := -1, -1

	for i, rec := range records {
		if rec.Depth() <= level {
			openName, openIndex = -1, -1
			continue
		}
		seg := rec.Path[level]

		if openName >= 0 && sameAncestry(records[out.Name[openName].Start], rec, level) &&
			records[out.Name[openName].Start].Path[level].Key == seg.Key {
			out.Name[openName].Length++
		} else {
			out.Name = append(out.Name, Group{Start: i, Length: 1, Segment: flatten.PathSegment{Key: seg.Key}})
			openName = len(out.Name) - 1
		}

		if openIndex >= 0 && sameAncestry(records[out.Index[openIndex].Start], rec, level) &&
			records[out.Index[openIndex].Start].Path[level] == seg {
			out.Index[openIndex].Length++
		} else {
			out.Index = append(out.Index, Group{Start: i, Length: 1, Segment: seg})
			openIndex = len(out.Index) - 1
		}
	}
	return out
}

// sameAncestry reports whether two records share every path segment strictly
// above the given level, including sequence indices.
func sameAncestry(a, b flatten.LeafRecord, level int) bool {
	for l := 0; l < level; l++ {
		if a.Path[l] != b.Path[l] {
			return false
		}
	}
	return true
}
