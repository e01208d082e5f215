package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"todoList/internal/console"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"glyph": console.Glyph,
	"due": func(t task.Task) string {
		if !t.HasDueDate() {
			return ""
		}
		return t.DueDate.Format(time.DateOnly)
	},
}).ParseFS(templateFS, "templates/index.html"))

// WebHandler serves the browser UI. Forms post back and get redirected to
// the listing so a refresh never repeats an action.
type WebHandler struct {
	TaskService Service
}

func NewWebHandler(taskService Service) *WebHandler {
	return &WebHandler{TaskService: taskService}
}

type pageData struct {
	Tasks      []task.Task
	Total      int
	Status     string
	Priority   string
	Query      string
	Filtered   bool
	Return     string
	Error      string
	Statuses   []task.Status
	Priorities []task.Priority
}

func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	query := r.URL.Query()
	data := pageData{
		Status:     query.Get("status"),
		Priority:   query.Get("priority"),
		Query:      query.Get("q"),
		Return:     filterValues(query).Encode(),
		Error:      query.Get("error"),
		Statuses:   task.Statuses,
		Priorities: task.Priorities,
	}

	all, err := h.TaskService.GetAllTasks(r.Context())
	if err != nil {
		logger.Error("HTTP: Failed to load tasks", err)
		data.Error = errorMessage(err)
		h.render(w, http.StatusServiceUnavailable, data)
		return
	}
	data.Total = len(all)

	options, err := filterFromQuery(r)
	if err != nil {
		data.Error = errorMessage(err)
		data.Tasks = all
		h.render(w, http.StatusBadRequest, data)
		return
	}
	data.Filtered = len(options) > 0

	tasks, err := h.TaskService.Find(r.Context(), options...)
	if err != nil {
		logger.Error("HTTP: Failed to filter tasks", err)
		data.Error = errorMessage(err)
		h.render(w, http.StatusServiceUnavailable, data)
		return
	}
	data.Tasks = tasks

	h.render(w, http.StatusOK, data)
}

func (h *WebHandler) render(w http.ResponseWriter, code int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logger.Error("HTTP: Failed to render page", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func (h *WebHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	if !h.parseForm(w, r) {
		return
	}

	priority, dueDate, err := parseCreateInput(r.PostForm.Get("priority"), r.PostForm.Get("due_date"))
	if err == nil {
		var created task.Task
		created, err = h.TaskService.AddTask(r.Context(), r.PostForm.Get("description"), priority, dueDate)
		if err == nil {
			logger.Info("HTTP_OUT: Task added from form", zap.String("task_id", created.ID.String()))
		}
	}
	h.redirect(w, r, err)
}

func (h *WebHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.TaskService.CompleteTask)
}

func (h *WebHandler) UncompleteTask(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.TaskService.UncompleteTask)
}

func (h *WebHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.TaskService.StartTask)
}

func (h *WebHandler) changeStatus(w http.ResponseWriter, r *http.Request, change statusChange) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	if !h.parseForm(w, r) {
		return
	}

	id, err := formID(r)
	if err == nil {
		_, err = change(r.Context(), id)
	}
	h.redirect(w, r, err)
}

func (h *WebHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	if !h.parseForm(w, r) {
		return
	}

	id, err := formID(r)
	if err == nil {
		err = h.TaskService.DeleteTask(r.Context(), id)
	}
	h.redirect(w, r, err)
}

func (h *WebHandler) SetPriority(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")
	if !h.parseForm(w, r) {
		return
	}

	id, err := formID(r)
	if err == nil {
		var priority task.Priority
		priority, err = task.ParsePriority(r.PostForm.Get("priority"))
		if err == nil {
			_, err = h.TaskService.UpdateTask(r.Context(), id, task.SetPriority(priority))
		}
	}
	h.redirect(w, r, err)
}

func (h *WebHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		logger.Warn("HTTP: Failed to parse form",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// redirect goes back to the listing with the filters the form was posted
// from. A failed action is reported through the error query parameter.
func (h *WebHandler) redirect(w http.ResponseWriter, r *http.Request, err error) {
	values, _ := url.ParseQuery(r.PostForm.Get("return"))
	target := filterValues(values)
	if err != nil {
		logger.Warn("HTTP: Form action failed",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		target.Set("error", errorMessage(err))
	}

	location := "/"
	if encoded := target.Encode(); encoded != "" {
		location += "?" + encoded
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func filterValues(query url.Values) url.Values {
	target := url.Values{}
	for _, key := range []string{"status", "priority", "q"} {
		if v := query.Get(key); v != "" {
			target.Set(key, v)
		}
	}
	return target
}

func formID(r *http.Request) (uuid.UUID, error) {
	id, err := parseID(r)
	if err != nil {
		return uuid.Nil, &task.ValidationError{Field: "id", Reason: "invalid task id"}
	}
	return id, nil
}

func errorMessage(err error) string {
	if businessErr := asBusinessError(err); businessErr != nil && businessErr.Code != service.CodeInternal {
		return businessErr.Message
	}
	return "something went wrong, please try again"
}
