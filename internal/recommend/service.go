package recommend

import (
	"context"
	"errors"
	"fmt"

	"github.com/veralin/go-mood-tunes/internal/mood"
	"github.com/veralin/go-mood-tunes/internal/session"
	"github.com/veralin/go-mood-tunes/internal/videosearch"
)

// VideoSearcher returns candidate videos for a query.
type VideoSearcher interface {
	Search(ctx context.Context, query string) ([]videosearch.Video, error)
}

// Service keeps the session's video recommendation in sync with its mood.
type Service struct {
	searcher VideoSearcher
	rng      mood.Picker
}

// NewService creates a recommendation service. The picker chooses among
// returned candidates; inject a deterministic one in tests.
func NewService(searcher VideoSearcher, rng mood.Picker) *Service {
	return &Service{searcher: searcher, rng: rng}
}

// Ensure makes st.Video valid for st.FinalMood. A search runs only when
// the mood is known and it either just changed or has never been looked
// up; otherwise the cached value is reused, including a cached "nothing
// found" result. contextText, when non-empty, is the raw text that
// produced the mood and shapes the query. Search failures leave st.Video
// untouched and come back as a user-visible warning.
func (s *Service) Ensure(ctx context.Context, st *session.State, changed bool, contextText string) string {
	if st.FinalMood == mood.Unknown {
		return ""
	}
	if !changed && st.Video != nil {
		return ""
	}

	videos, err := s.searcher.Search(ctx, BuildQuery(st.FinalMood, contextText))
	if err != nil {
		return searchWarning(err)
	}

	if len(videos) == 0 {
		st.Video = &session.VideoResult{Found: false}
		return ""
	}

	v := videos[s.rng.Intn(len(videos))]
	st.Video = &session.VideoResult{
		Found:    true,
		Title:    v.Title,
		URL:      v.URL(),
		EmbedURL: v.EmbedURL(),
	}
	return ""
}

// BuildQuery constructs the video search query for a mood, optionally
// flavored with the free text that produced it.
func BuildQuery(m mood.Mood, contextText string) string {
	if contextText != "" {
		return fmt.Sprintf("%s music for %s", m, contextText)
	}
	return fmt.Sprintf("%s music songs", m)
}

func searchWarning(err error) string {
	switch {
	case errors.Is(err, videosearch.ErrQuotaExceeded):
		return "Video search is over its daily limit. Try again later."
	case isTimeout(err):
		return "Video search timed out. Please try again."
	default:
		return "Couldn't fetch a song recommendation right now."
	}
}
