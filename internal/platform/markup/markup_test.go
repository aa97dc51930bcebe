package markup

import (
	"strings"
	"testing"
)

const errEscapeFmt = "EscapeMarkdownV2(%q) = %q, want %q"

func TestEscapeMarkdownV2(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain text untouched",
			text: "простой текст",
			want: "простой текст",
		},
		{
			name: "escapes punctuation",
			text: "Вопрос дня. Готовы?!",
			want: "Вопрос дня\\. Готовы?\\!",
		},
		{
			name: "emphasis char stays raw",
			text: "a*b*c",
			want: "a*b*c",
		},
		{
			name: "escapes brackets and parens",
			text: "a [b] (c)",
			want: "a \\[b\\] \\(c\\)",
		},
		{
			name: "link construct is byte-identical",
			text: "Взято: 50.0% · hard · [источник](https://gotquestions.online/question/123)",
			want: "Взято: 50\\.0% · hard · [источник](https://gotquestions.online/question/123)",
		},
		{
			name: "multiple links with duplicate targets",
			text: "[a](https://x.test/1) и [a](https://x.test/1) и точка.",
			want: "[a](https://x.test/1) и [a](https://x.test/1) и точка\\.",
		},
		{
			name: "punctuation inside link label and url survives",
			text: "см. [п.1 (прим.)](https://x.test/a_b.html)",
			want: "см\\. [п.1 (прим.)](https://x.test/a_b.html)",
		},
		{
			name: "empty string",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMarkdownV2(tt.text)

			if got != tt.want {
				t.Errorf(errEscapeFmt, tt.text, got, tt.want)
			}
		})
	}
}

func TestEscapeMarkdownV2ReservedSet(t *testing.T) {
	reserved := []string{"_", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}

	for _, ch := range reserved {
		t.Run(ch, func(t *testing.T) {
			got := EscapeMarkdownV2("a" + ch + "b")

			if got != "a\\"+ch+"b" {
				t.Errorf(errEscapeFmt, "a"+ch+"b", got, "a\\"+ch+"b")
			}
		})
	}
}

func TestEscapeMarkdownV2AroundLinks(t *testing.T) {
	got := EscapeMarkdownV2("до [label](https://example.org/a.jpg) после.")

	if !strings.HasPrefix(got, "до [label](https://example.org/a.jpg)") {
		t.Errorf("EscapeMarkdownV2() = %q, link not preserved", got)
	}

	if !strings.Contains(got, "после\\.") {
		t.Errorf("EscapeMarkdownV2() = %q, surrounding text not escaped", got)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "round trip restores the original",
			text: "Вопрос дня. Готовы?!",
			want: "Вопрос дня. Готовы?!",
		},
		{
			name: "emphasis markers stay",
			text: "*Ответ:* 42",
			want: "*Ответ:* 42",
		},
		{
			name: "plain text untouched",
			text: "без экранирования",
			want: "без экранирования",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unescape(EscapeMarkdownV2(tt.text))

			if got != tt.want {
				t.Errorf("Unescape(EscapeMarkdownV2(%q)) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestBoldItalic(t *testing.T) {
	if got := Bold("Ответ:"); got != "*Ответ:*" {
		t.Errorf("Bold() = %q, want %q", got, "*Ответ:*")
	}

	if got := Italic("прим"); got != "_прим_" {
		t.Errorf("Italic() = %q, want %q", got, "_прим_")
	}
}
