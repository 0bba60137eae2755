package term

// HyperlinkID identifies a registered hyperlink. Zero means the cell
// carries no hyperlink.
type HyperlinkID uint16

type hyperlink struct {
	uri      string
	customID string
}

// hyperlinkStore assigns numeric ids to hyperlinks and resolves them
// back to their URI and custom id.
type hyperlinkStore struct {
	byID   map[HyperlinkID]hyperlink
	byKey  map[string]HyperlinkID
	nextID HyperlinkID
}

func newHyperlinkStore() *hyperlinkStore {
	return &hyperlinkStore{
		byID:   make(map[HyperlinkID]hyperlink),
		byKey:  make(map[string]HyperlinkID),
		nextID: 1,
	}
}

// add registers a hyperlink and returns its id. A link that carries a
// custom id is deduplicated: registering the same custom id and URI
// again yields the original id. Links without a custom id always get
// a fresh id.
func (s *hyperlinkStore) add(uri, customID string) HyperlinkID {
	if s.nextID == 0 {
		// Id space exhausted; attribute lookups for id 0 resolve to
		// no hyperlink, so further links are dropped.
		return 0
	}

	if customID != "" {
		key := customID + "\x00" + uri
		if id, ok := s.byKey[key]; ok {
			return id
		}
		id := s.nextID
		s.nextID++
		s.byID[id] = hyperlink{uri: uri, customID: customID}
		s.byKey[key] = id
		return id
	}

	id := s.nextID
	s.nextID++
	s.byID[id] = hyperlink{uri: uri}
	return id
}

func (s *hyperlinkStore) uri(id HyperlinkID) string {
	return s.byID[id].uri
}

func (s *hyperlinkStore) customID(id HyperlinkID) string {
	return s.byID[id].customID
}
