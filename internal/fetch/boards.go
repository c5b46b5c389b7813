package fetch

import (
	"net/url"
	"strings"
)

// Board identifies a job board whose page structure we know how to read.
type Board string

const (
	BoardGreenhouse Board = "greenhouse"
	BoardLever      Board = "lever"
	BoardWorkday    Board = "workday"
	BoardGeneric    Board = "generic"
)

// boardProfile holds everything board-specific: the hostname markers that
// identify it, the selectors likely to hold the posting body, and the noise
// to strip before text extraction.
type boardProfile struct {
	hosts   []string
	content []string
	noise   []string
}

// commonNoise is stripped from every board: application forms, legal
// disclosures, and consent banners never belong in the description text.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	".voluntary-disclosure",
	".eeo-statement",
	".social-share",
	".cookie-banner",
	".cookie-consent",
}

var boardProfiles = map[Board]boardProfile{
	BoardGreenhouse: {
		hosts:   []string{"greenhouse.io"},
		content: []string{".job__description.body", ".job__description", "#content"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", ".post-apply"},
	},
	BoardLever: {
		hosts:   []string{"lever.co"},
		content: []string{".posting-page", ".posting-description", ".content"},
		noise:   []string{".apply-section", ".posting-apply"},
	},
	BoardWorkday: {
		hosts:   []string{"workday.com", "myworkdayjobs.com"},
		content: []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:   []string{"[data-automation-id='applyButton']", ".application-section"},
	},
}

// DetectBoard identifies the job board a posting URL belongs to.
func DetectBoard(urlStr string) Board {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return BoardGeneric
	}
	host := strings.ToLower(parsed.Host)
	for board, profile := range boardProfiles {
		for _, marker := range profile.hosts {
			if strings.Contains(host, marker) {
				return board
			}
		}
	}
	return BoardGeneric
}

// ContentSelectors returns the posting-body selectors for a board, falling
// back to the generic job-posting selectors for unrecognized hosts.
func ContentSelectors(board Board) []string {
	if profile, ok := boardProfiles[board]; ok {
		return profile.content
	}
	return JobPostingSelectors()
}

// NoiseSelectors returns the exclusion selectors for a board, always
// including the common set.
func NoiseSelectors(board Board) []string {
	out := append([]string{}, commonNoise...)
	if profile, ok := boardProfiles[board]; ok {
		out = append(out, profile.noise...)
	}
	return out
}
