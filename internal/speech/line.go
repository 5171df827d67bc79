package speech

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type lineResult struct {
	text string
	err  error
}

// LineRecognizer treats each line of an io.Reader as one spoken utterance.
// With Interim set it publishes growing word prefixes before the final
// transcript, the way a browser recognizer streams partial results.
type LineRecognizer struct {
	Language language.Tag
	Interim  bool

	reader io.Reader
	once   sync.Once
	lines  chan lineResult
}

func NewLineRecognizer(r io.Reader, lang language.Tag, interim bool) *LineRecognizer {
	return &LineRecognizer{Language: lang, Interim: interim, reader: r}
}

func (r *LineRecognizer) Start(ctx context.Context) (*Session, error) {
	r.once.Do(func() {
		r.lines = make(chan lineResult)
		go r.scan()
	})

	s := NewSession(ctx)
	go r.run(s)
	return s, nil
}

func (r *LineRecognizer) scan() {
	scanner := bufio.NewScanner(r.reader)
	for scanner.Scan() {
		r.lines <- lineResult{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	for {
		r.lines <- lineResult{err: err}
	}
}

func (r *LineRecognizer) run(s *Session) {
	var line lineResult
	select {
	case line = <-r.lines:
	case <-s.Context().Done():
		return
	}
	if line.err != nil {
		s.Fail(line.err)
		return
	}

	transcript := strings.TrimSpace(line.text)
	log.Debugf("recognize lang=%s chars=%d", r.Language, len(transcript))
	if r.Interim {
		words := strings.Fields(transcript)
		for i := 1; i < len(words); i++ {
			if !s.Interim(strings.Join(words[:i], " ")) {
				return
			}
		}
	}
	s.Finish(transcript)
}
