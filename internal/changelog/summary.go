package changelog

// TypeSummary counts the messages of one change type and the files they
// came from.
type TypeSummary struct {
	Type     ChangeType
	Messages int
	Files    int
}

// Summary is an overview of a set of change entries.
type Summary struct {
	Files    int
	Types    []TypeSummary
	Category ReleaseCategory
}

// Messages returns the total number of messages across all types.
func (s *Summary) Messages() int {
	n := 0
	for _, ts := range s.Types {
		n += ts.Messages
	}
	return n
}

// Summarize validates entries and counts their messages by change type.
// Only types with at least one message are listed, in declaration order.
func Summarize(entries []Entry) (*Summary, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	messages := make(map[ChangeType]int)
	files := make(map[ChangeType]int)
	condensed := make(ChangeSet)
	var errs []ValidationError

	for _, e := range entries {
		cs, entryErrs := ValidateEntry(e)
		if len(entryErrs) > 0 {
			errs = append(errs, entryErrs...)
			continue
		}
		for t, msgs := range cs {
			if len(msgs) == 0 {
				continue
			}
			messages[t] += len(msgs)
			files[t]++
		}
		condensed.Merge(cs)
	}

	if len(errs) > 0 {
		return nil, &SchemaError{Errors: errs}
	}

	s := &Summary{Files: len(entries), Category: Classify(condensed)}
	for _, t := range changeTypes {
		if messages[t] > 0 {
			s.Types = append(s.Types, TypeSummary{Type: t, Messages: messages[t], Files: files[t]})
		}
	}
	return s, nil
}
