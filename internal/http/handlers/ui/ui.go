// Package ui реализует отдачу страниц панели администратора.
//
// Страницы рендерятся на сервере из html/template и сами подтягивают данные
// через JSON API панели. Запрос без валидной сессии перенаправляется на /login.
package ui

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/kaiquedev/washadmin/internal/http/middlewarectx"
	"github.com/kaiquedev/washadmin/internal/lib/session"
	"github.com/kaiquedev/washadmin/internal/lib/sl"
)

// Handler отдает HTML-страницы панели.
type Handler struct {
	log       *slog.Logger
	auth      middlewarectx.SessionParser
	templates *template.Template
}

// New создает новый экземпляр Handler, загружая шаблоны из указанного каталога.
func New(log *slog.Logger, auth middlewarectx.SessionParser, templatesDir string) *Handler {
	tmpl := template.Must(template.ParseGlob(filepath.Join(templatesDir, "*.html")))
	return &Handler{
		log:       log,
		auth:      auth,
		templates: tmpl,
	}
}

func (h *Handler) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return false
	}
	_, err = h.auth.ParseSession(cookie.Value)
	return err == nil
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("failed to render template", slog.String("template", name), sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Login отдает страницу входа. Администратор с активной сессией
// перенаправляется на дашборд.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.hasSession(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, "login.html", map[string]any{
		"Title": "Entrar",
	})
}

// Dashboard отдает сводную страницу со счетчиками и списком ожидающих одобрения.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.hasSession(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.render(w, "dashboard.html", map[string]any{
		"Title": "Dashboard",
	})
}

// Users отдает полную таблицу пользователей с фильтрами и действиями.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	if !h.hasSession(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.render(w, "users.html", map[string]any{
		"Title": "Usuários",
	})
}
