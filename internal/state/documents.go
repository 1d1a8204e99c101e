package state

import "github.com/custodia-labs/botdesk-client/internal/core/domain"

// SetDocuments replaces the document list. Live statuses already polled
// keep their precedence over the incoming list values.
func (s *Store) SetDocuments(docs []domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append([]domain.Document(nil), docs...)
}

// Documents returns a copy of the document list with live statuses
// merged in
func (s *Store) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, len(s.documents))
	for i, doc := range s.documents {
		out[i] = s.merged(doc)
	}
	return out
}

// Document returns a single document with its live status merged in
func (s *Store) Document(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ID == id {
			return s.merged(doc), true
		}
	}
	return domain.Document{}, false
}

// ApplyDocumentStatus records a live status for a document. The value
// wins over whatever the list carries; applying the same status twice
// leaves the state unchanged. Later arrivals overwrite earlier ones
// regardless of which poll produced them.
func (s *Store) ApplyDocumentStatus(id string, status domain.ProcessingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveStatus[id] = status
}

// MergedStatus returns the effective status for a document: the live
// polled value when present, otherwise the list value.
func (s *Store) MergedStatus(id string) (domain.DocumentStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if live, ok := s.liveStatus[id]; ok {
		return live.Status, true
	}
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc.Status, true
		}
	}
	return "", false
}

// UnfinishedDocumentIDs returns the ids of listed documents whose
// merged status is not completed. This is the set the status poll
// targets; it is recomputed from current state on every call.
func (s *Store) UnfinishedDocumentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, doc := range s.documents {
		status := doc.Status
		if live, ok := s.liveStatus[doc.ID]; ok {
			status = live.Status
		}
		if status != domain.DocumentStatusCompleted {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}

// SetSummary replaces the processing summary wholesale
func (s *Store) SetSummary(summary *domain.ProcessingSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
}

// Summary returns the processing summary, or nil before the first fetch
func (s *Store) Summary() *domain.ProcessingSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return nil
	}
	out := *s.summary
	return &out
}

// SetUploadProgress records the progress fraction for an in-flight upload
func (s *Store) SetUploadProgress(id string, fraction float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadProgress[id] = fraction
}

// ClearUploadProgress drops the progress entry for a finished upload
func (s *Store) ClearUploadProgress(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploadProgress, id)
}

// UploadProgress returns the progress fraction for an upload, or 0
func (s *Store) UploadProgress(id string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploadProgress[id]
}

// SetFilters replaces the document list filters
func (s *Store) SetFilters(filters domain.DocumentFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// Filters returns the document list filters
func (s *Store) Filters() domain.DocumentFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SelectDocument marks a document as the active one
func (s *Store) SelectDocument(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDocumentID = id
}

// SelectedDocument returns the active document with live status merged,
// or false when none is selected
func (s *Store) SelectedDocument() (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ID == s.selectedDocumentID {
			return s.merged(doc), true
		}
	}
	return domain.Document{}, false
}

// merged applies the live status to a list document. Callers hold at
// least the read lock.
func (s *Store) merged(doc domain.Document) domain.Document {
	live, ok := s.liveStatus[doc.ID]
	if !ok {
		return doc
	}
	doc.Status = live.Status
	if live.ChunkCount > 0 {
		doc.ChunkCount = live.ChunkCount
	}
	if live.ProcessingError != "" {
		doc.ProcessingError = live.ProcessingError
	}
	return doc
}
