package transcription

import (
	"context"
	"errors"
	"testing"

	"github.com/defensoria-df/solar-transcricao/internal/domain/entities"
	ucerrors "github.com/defensoria-df/solar-transcricao/internal/usecase/errors"
)

type fakeLookup struct {
	raw   any
	err   error
	calls []string
}

func (f *fakeLookup) LookupCase(_ context.Context, caseNumber string) (any, error) {
	f.calls = append(f.calls, caseNumber)
	return f.raw, f.err
}

type fakeTranscriber struct {
	raw    any
	err    error
	last   entities.TranscriptionRequest
	during func()
}

func (f *fakeTranscriber) Transcribe(_ context.Context, req entities.TranscriptionRequest) (any, error) {
	f.last = req
	if f.during != nil {
		f.during()
	}
	return f.raw, f.err
}

type fakeSubmitter struct {
	result any
	err    error
	sent   []string
}

func (f *fakeSubmitter) SubmitTranscript(_ context.Context, transcript string) (any, error) {
	f.sent = append(f.sent, transcript)
	return f.result, f.err
}

type fakeSessions struct {
	data    map[string]entities.WorkflowSession
	findErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: map[string]entities.WorkflowSession{}}
}

func (f *fakeSessions) FindByID(_ context.Context, id string) (*entities.WorkflowSession, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.data[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessions) Save(_ context.Context, s *entities.WorkflowSession) error {
	f.data[s.ID] = *s
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.data, id)
	return nil
}

type fixture struct {
	lookup      *fakeLookup
	transcriber *fakeTranscriber
	submitter   *fakeSubmitter
	sessions    *fakeSessions
	svc         Service
}

func newFixture() *fixture {
	f := &fixture{
		lookup: &fakeLookup{raw: []any{
			map[string]any{"nome": "Audiência", "documento": "45"},
			map[string]any{"nome": "Oitiva", "documento": "46"},
		}},
		transcriber: &fakeTranscriber{raw: []any{map[string]any{
			"utterances": []any{
				map[string]any{"speaker": "A", "text": "hi"},
				map[string]any{"speaker": "B", "text": ""},
			},
		}}},
		submitter: &fakeSubmitter{result: map[string]any{"ok": true}},
		sessions:  newFakeSessions(),
	}
	f.svc = NewService(f.lookup, f.transcriber, f.submitter, f.sessions, nil, nil)
	return f
}

const sid = "7f0c7d0e-8a43-4a52-9a31-0d4c9d7f2b10"

func TestServicePipeline(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	lookup, err := f.svc.LookupCase(ctx, sid, " 123 ")
	if err != nil {
		t.Fatalf("LookupCase() error = %v", err)
	}
	if lookup.CaseNumber != "123" || len(lookup.Videos) != 2 {
		t.Fatalf("LookupCase() = %+v", lookup)
	}
	if want := BuildLink("123", "45"); lookup.Videos[0].Link != want {
		t.Errorf("Link = %q, want %q", lookup.Videos[0].Link, want)
	}

	out, err := f.svc.Transcribe(ctx, sid, "45")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if out.Transcript != "A:\nhi" {
		t.Errorf("Transcript = %q", out.Transcript)
	}
	want := entities.TranscriptionRequest{
		VideoLink:  BuildLink("123", "45"),
		VideoName:  "Audiência",
		DocumentID: "45",
		CaseNumber: "123",
	}
	if f.transcriber.last != want {
		t.Errorf("transcription request = %+v, want %+v", f.transcriber.last, want)
	}

	sub, err := f.svc.Submit(ctx, sid)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sub.Video == nil || sub.Video.DocumentID != "45" {
		t.Errorf("Submit() video = %+v", sub.Video)
	}
	if len(f.submitter.sent) != 1 || f.submitter.sent[0] != "A:\nhi" {
		t.Errorf("sent = %q", f.submitter.sent)
	}

	session, err := f.svc.GetSession(ctx, sid)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session.SubmittedAt == nil {
		t.Error("session should record submission")
	}
}

func TestServiceLookupErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty case number", func(t *testing.T) {
		f := newFixture()
		if _, err := f.svc.LookupCase(ctx, sid, "  "); !errors.Is(err, ucerrors.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
		if len(f.lookup.calls) != 0 {
			t.Error("lookup service should not be called")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		f := newFixture()
		f.lookup.err = errors.New("connection refused")
		if _, err := f.svc.LookupCase(ctx, sid, "1"); !errors.Is(err, ucerrors.ErrLookupFailed) {
			t.Errorf("error = %v, want ErrLookupFailed", err)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		f := newFixture()
		f.lookup.raw = "Workflow was started"
		_, err := f.svc.LookupCase(ctx, sid, "1")
		if !errors.Is(err, ucerrors.ErrUpstreamMalformed) || !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("error = %v, want ErrUpstreamMalformed wrapping ErrUnexpectedShape", err)
		}
	})

	t.Run("no videos is not an error", func(t *testing.T) {
		f := newFixture()
		f.lookup.raw = map[string]any{}
		out, err := f.svc.LookupCase(ctx, sid, "1")
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if len(out.Videos) != 0 {
			t.Errorf("videos = %v", out.Videos)
		}
	})

	t.Run("session store failure", func(t *testing.T) {
		f := newFixture()
		f.sessions.findErr = errors.New("redis down")
		if _, err := f.svc.LookupCase(ctx, sid, "1"); !errors.Is(err, ucerrors.ErrSessionUnavailable) {
			t.Errorf("error = %v, want ErrSessionUnavailable", err)
		}
	})
}

func TestServiceTranscribeErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no active case", func(t *testing.T) {
		f := newFixture()
		if _, err := f.svc.Transcribe(ctx, sid, "45"); !errors.Is(err, ucerrors.ErrNoActiveCase) {
			t.Errorf("error = %v, want ErrNoActiveCase", err)
		}
	})

	t.Run("missing document", func(t *testing.T) {
		f := newFixture()
		if _, err := f.svc.Transcribe(ctx, sid, ""); !errors.Is(err, ucerrors.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown video", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		if _, err := f.svc.Transcribe(ctx, sid, "99"); !errors.Is(err, ucerrors.ErrVideoNotFound) {
			t.Errorf("error = %v, want ErrVideoNotFound", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.transcriber.raw = map[string]any{}
		if _, err := f.svc.Transcribe(ctx, sid, "45"); !errors.Is(err, ucerrors.ErrTranscriptionEmpty) {
			t.Errorf("error = %v, want ErrTranscriptionEmpty", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.transcriber.err = context.DeadlineExceeded
		_, err := f.svc.Transcribe(ctx, sid, "45")
		if !errors.Is(err, ucerrors.ErrTranscriptionFailed) || !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("error = %v, want ErrTranscriptionFailed wrapping deadline", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.transcriber.raw = map[string]any{"utterances": []any{"A: hi"}}
		if _, err := f.svc.Transcribe(ctx, sid, "45"); !errors.Is(err, ucerrors.ErrUpstreamMalformed) {
			t.Errorf("error = %v, want ErrUpstreamMalformed", err)
		}
	})
}

func TestServiceSubmitErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no transcript", func(t *testing.T) {
		f := newFixture()
		if _, err := f.svc.Submit(ctx, sid); !errors.Is(err, ucerrors.ErrTranscriptMissing) {
			t.Errorf("error = %v, want ErrTranscriptMissing", err)
		}
	})

	t.Run("empty formatted transcript", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.transcriber.raw = map[string]any{"text": "   "}
		if _, err := f.svc.Transcribe(ctx, sid, "45"); err != nil {
			t.Fatalf("Transcribe() error = %v", err)
		}
		if _, err := f.svc.Submit(ctx, sid); !errors.Is(err, ucerrors.ErrTranscriptMissing) {
			t.Errorf("error = %v, want ErrTranscriptMissing", err)
		}
	})

	t.Run("null result", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.svc.Transcribe(ctx, sid, "45")
		f.submitter.result = nil
		if _, err := f.svc.Submit(ctx, sid); !errors.Is(err, ucerrors.ErrSubmissionRejected) {
			t.Errorf("error = %v, want ErrSubmissionRejected", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		f := newFixture()
		f.svc.LookupCase(ctx, sid, "123")
		f.svc.Transcribe(ctx, sid, "45")
		f.submitter.err = errors.New("status 500")
		if _, err := f.svc.Submit(ctx, sid); !errors.Is(err, ucerrors.ErrSubmissionFailed) {
			t.Errorf("error = %v, want ErrSubmissionFailed", err)
		}
	})
}

func TestServiceNewLookupResetsSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.svc.LookupCase(ctx, sid, "123")
	f.svc.Transcribe(ctx, sid, "45")
	f.svc.LookupCase(ctx, sid, "456")

	if _, err := f.svc.Submit(ctx, sid); !errors.Is(err, ucerrors.ErrTranscriptMissing) {
		t.Errorf("Submit() after new lookup error = %v, want ErrTranscriptMissing", err)
	}
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	other := "0b7e2c55-1f7c-4f7e-8e44-2b1f4e6a9c01"

	f.svc.LookupCase(ctx, sid, "123")
	if _, err := f.svc.Transcribe(ctx, other, "45"); !errors.Is(err, ucerrors.ErrNoActiveCase) {
		t.Errorf("Transcribe() in other session error = %v, want ErrNoActiveCase", err)
	}

	if err := f.svc.ResetSession(ctx, sid); err != nil {
		t.Fatalf("ResetSession() error = %v", err)
	}
	s, _ := f.svc.GetSession(ctx, sid)
	if s.HasCase() {
		t.Error("session should be empty after reset")
	}
}

func TestServiceTranscribeKeepsNewerLookup(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.svc.LookupCase(ctx, sid, "123")
	f.transcriber.during = func() {
		if _, err := f.svc.LookupCase(ctx, sid, "456"); err != nil {
			t.Errorf("concurrent LookupCase() error = %v", err)
		}
	}

	if _, err := f.svc.Transcribe(ctx, sid, "45"); !errors.Is(err, ucerrors.ErrCaseChanged) {
		t.Fatalf("Transcribe() error = %v, want ErrCaseChanged", err)
	}

	s, err := f.svc.GetSession(ctx, sid)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if s.CaseNumber != "456" {
		t.Errorf("CaseNumber = %q, want 456", s.CaseNumber)
	}
	if len(s.Videos) != 2 || s.Videos[0].Link != BuildLink("456", "45") {
		t.Errorf("Videos = %+v", s.Videos)
	}
	if !s.Transcript.IsEmpty() || s.SelectedVideo != nil {
		t.Errorf("transcript of the old case leaked into the session: %q", s.Transcript)
	}
}

func TestServiceTranscribeSameCaseRelookup(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.svc.LookupCase(ctx, sid, "123")
	f.transcriber.during = func() { f.svc.LookupCase(ctx, sid, "123") }

	if _, err := f.svc.Transcribe(ctx, sid, "45"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	s, _ := f.svc.GetSession(ctx, sid)
	if s.Transcript != "A:\nhi" {
		t.Errorf("Transcript = %q", s.Transcript)
	}
}
