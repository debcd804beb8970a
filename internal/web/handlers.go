package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jywlabs/promptbuilder/internal/draft"
	"github.com/jywlabs/promptbuilder/internal/session"
	tmpl "github.com/jywlabs/promptbuilder/internal/template"
	"go.uber.org/zap"
)

type sectionView struct {
	Key         string
	Title       string
	Tip         string
	Description string
	Placeholder string
	Color       template.CSS
	Value       string
}

type pageData struct {
	Session  session.Session
	Builder  bool
	Sections []sectionView
}

func newPageData(s session.Session) pageData {
	data := pageData{Session: s, Builder: s.View != session.ViewOutput}
	for _, sec := range draft.Sections() {
		data.Sections = append(data.Sections, sectionView{
			Key:         string(sec.Field),
			Title:       sec.Title,
			Tip:         sec.Tip,
			Description: sec.Description,
			Placeholder: sec.Placeholder,
			Color:       template.CSS(sec.Color),
			Value:       s.Draft.Get(sec.Field),
		})
	}
	return data
}

func (s *Server) handleIndex(c *gin.Context) {
	if s.page == nil {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(FallbackHTML))
		return
	}

	snap := s.snapshot(c)

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, newPageData(snap)); err != nil {
		c.Error(fmt.Errorf("render page: %w", err))
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(FallbackHTML))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// handleFields stores every section present in the form, then applies the
// optional action: "generate", "view:builder" or "view:output".
func (s *Server) handleFields(c *gin.Context) {
	action := c.PostForm("action")

	var view session.View
	if name, ok := strings.CutPrefix(action, "view:"); ok {
		v, err := session.ParseView(name)
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		view = v
	} else if action != "" && action != "generate" {
		c.String(http.StatusBadRequest, fmt.Sprintf("unknown action %q", action))
		return
	}

	s.sessions.With(sessionID(c), func(sess *session.Session) {
		applyFields(c, sess)
		switch {
		case action == "generate":
			sess.Generate()
		case view != "":
			_ = sess.SetView(view)
		}
	})
	c.Redirect(http.StatusSeeOther, "/")
}

// handleMenu toggles the menu. In the builder view the toggle submits the
// draft form, so typed text is stored first.
func (s *Server) handleMenu(c *gin.Context) {
	s.sessions.With(sessionID(c), func(sess *session.Session) {
		applyFields(c, sess)
		sess.ToggleMenu()
	})
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleView(c *gin.Context) {
	v, err := session.ParseView(c.Param("name"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	s.sessions.With(sessionID(c), func(sess *session.Session) {
		_ = sess.SetView(v)
	})
	c.Redirect(http.StatusSeeOther, "/")
}

// action wraps a session mutator as a post-redirect-get handler.
func (s *Server) action(fn func(*session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.sessions.With(sessionID(c), fn)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (s *Server) handleDownload(c *gin.Context) {
	snap := s.snapshot(c)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, s.downloadName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(snap.Assembled))
	s.log.Debug("prompt downloaded", zap.Int("bytes", len(snap.Assembled)))
}

func (s *Server) handleTemplate(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(tmpl.AssistantTemplate))
}

func (s *Server) handleSession(c *gin.Context) {
	snap := s.snapshot(c)
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":         s.Ready(),
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
		"sessions":   s.sessions.Len(),
	})
}

// applyFields stores every section present in the posted form.
func applyFields(c *gin.Context, sess *session.Session) {
	for _, f := range draft.Fields() {
		if value, ok := c.GetPostForm(string(f)); ok {
			// f comes from draft.Fields, so Set cannot fail.
			_ = sess.SetField(f, normalizeNewlines(value))
		}
	}
}

// snapshot returns the caller's session, or a fresh one when it has none.
func (s *Server) snapshot(c *gin.Context) session.Session {
	if snap, ok := s.sessions.Snapshot(sessionID(c)); ok {
		return snap
	}
	return *session.New()
}

// normalizeNewlines turns the CRLF line endings browsers submit into LF.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
