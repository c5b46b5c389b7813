package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_TagsLineKinds(t *testing.T) {
	text := "Jane Doe\njane@example.com | 555-123-4567\n\nExperience\n• Led a team of 5 engineers\nWorked on internal tooling\n"

	lines := Classify(text)

	assert.Len(t, lines, 5) // blank line dropped
	assert.Equal(t, LinePlainText, lines[0].Kind)
	assert.Equal(t, LineContact, lines[1].Kind)
	assert.Equal(t, LineSectionHeader, lines[2].Kind)
	assert.Equal(t, SectionExperience, lines[2].Section)
	assert.Equal(t, LineBullet, lines[3].Kind)
	assert.Equal(t, LinePlainText, lines[4].Kind)
}

func TestClassify_IndexCountsNonBlankLines(t *testing.T) {
	lines := Classify("a\n\n\nb\nc")

	assert.Len(t, lines, 3)
	for i, l := range lines {
		assert.Equal(t, i, l.Index)
	}
}

func TestIsBulletLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"• Led the migration", true},
		{"- Reduced costs by 20%", true},
		{"* Built a CI pipeline", true},
		{"– Managed vendor relationships", true},
		{"Led the migration", false},
		{"-no space after dash", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBulletLine(tt.line), tt.line)
	}
}

func TestStripBulletMarker(t *testing.T) {
	assert.Equal(t, "Led the migration", StripBulletMarker("  • Led the migration"))
	assert.Equal(t, "Reduced costs", StripBulletMarker("- Reduced costs"))
	assert.Equal(t, "plain text", StripBulletMarker("plain text"))
}

func TestHeaderSection_LongLinesAreNotHeaders(t *testing.T) {
	long := "My experience includes many years of working with distributed systems at scale"
	assert.Equal(t, SectionNone, headerSection(long))
	assert.Equal(t, SectionSkills, headerSection("Skills:"))
	assert.Equal(t, SectionEducation, headerSection("EDUCATION"))
}

func TestBullets_ReturnsStrippedTextInOrder(t *testing.T) {
	lines := Classify("Experience\n• First bullet\ntext\n- Second bullet")

	got := Bullets(lines)

	assert.Equal(t, []string{"First bullet", "Second bullet"}, got)
}
