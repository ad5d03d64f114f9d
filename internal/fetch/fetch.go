// Package fetch opportunistically enriches a prompt with the content of a
// URL the user mentioned. Augmentation is strictly best-effort: any failure
// degrades to an empty context and the request proceeds unaugmented.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/anderson/internal/worklog"
)

// snippetLimit caps how much of a fetched body is forwarded to the model.
const snippetLimit = 2000

var urlPattern = regexp.MustCompile(`https?://\S+`)

type Augmenter struct {
	client  *http.Client
	worklog *worklog.Logger
}

func NewAugmenter(wl *worklog.Logger) *Augmenter {
	return &Augmenter{
		client:  &http.Client{Timeout: 15 * time.Second},
		worklog: wl,
	}
}

// Augment returns a labeled context block for the first URL found in the
// prompt, or an empty string. It triggers only when the prompt mentions
// "fetch " or "http" (case-insensitive), and fetches at most one URL.
func (a *Augmenter) Augment(ctx context.Context, prompt string) string {
	lower := strings.ToLower(prompt)
	if !strings.Contains(lower, "fetch ") && !strings.Contains(lower, "http") {
		return ""
	}

	url := urlPattern.FindString(prompt)
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.worklog.Append(fmt.Sprintf("System: Failed to fetch %s: %s", url, err))
		return ""
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.worklog.Append(fmt.Sprintf("System: Failed to fetch %s: %s", url, err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.worklog.Append(fmt.Sprintf("System: Failed to fetch %s: status %d", url, resp.StatusCode))
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, snippetLimit))
	if err != nil {
		a.worklog.Append(fmt.Sprintf("System: Failed to fetch %s: %s", url, err))
		return ""
	}

	a.worklog.Append("System: Successfully fetched " + url)
	return fmt.Sprintf("\n\n[Current Content from %s]:\n%s...", url, string(body))
}
