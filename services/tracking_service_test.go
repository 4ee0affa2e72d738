package services

import "testing"

func TestTrackIsDeterministic(t *testing.T) {
	svc := NewTrackingService()

	first, err := svc.Track("SC123456")
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	second, _ := svc.Track("SC123456")

	if first.Status != second.Status || first.Progress != second.Progress {
		t.Errorf("same code produced different results: %+v vs %+v", first, second)
	}
}

func TestTrackNormalizesCode(t *testing.T) {
	svc := NewTrackingService()

	upper, _ := svc.Track("SC123456")
	lower, _ := svc.Track("  sc123456 ")

	if upper.Status != lower.Status {
		t.Errorf("normalization mismatch: %q vs %q", upper.Status, lower.Status)
	}
	if lower.Code != "SC123456" {
		t.Errorf("expected normalized code SC123456, got %q", lower.Code)
	}
}

func TestTrackTimelineShape(t *testing.T) {
	svc := NewTrackingService()
	codes := []string{"SC1", "SC2", "ABCDEF", "PKG-2024-001", "X"}

	for _, code := range codes {
		info, err := svc.Track(code)
		if err != nil {
			t.Fatalf("Track(%q) failed: %v", code, err)
		}
		if info.Progress < 0 || info.Progress > 100 {
			t.Errorf("Track(%q) progress %d out of range", code, info.Progress)
		}
		if len(info.Steps) != len(trackingStages) {
			t.Fatalf("Track(%q) returned %d steps, want %d", code, len(info.Steps), len(trackingStages))
		}

		currents := 0
		for i, step := range info.Steps {
			if step.Current {
				currents++
				if step.Label != info.Status {
					t.Errorf("Track(%q) current step %q does not match status %q", code, step.Label, info.Status)
				}
			}
			if i > 0 && step.Done && !info.Steps[i-1].Done {
				t.Errorf("Track(%q) has a done step after a pending one", code)
			}
		}
		if currents != 1 {
			t.Errorf("Track(%q) marked %d steps current, want exactly 1", code, currents)
		}
	}
}

func TestTrackEmptyCode(t *testing.T) {
	svc := NewTrackingService()

	for _, code := range []string{"", "   "} {
		if _, err := svc.Track(code); err != ErrEmptyTrackingCode {
			t.Errorf("Track(%q) error = %v, want ErrEmptyTrackingCode", code, err)
		}
	}
}
