package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"chat-export-analyzer/internal/cache"
	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/pkg/config"
)

// taskTTL — срок хранения записи о задаче.
const taskTTL = 24 * time.Hour

// ChatAnalyzer определяет интерфейс варианта использования, который
// анализирует пакет файлов экспорта.
type ChatAnalyzer interface {
	AnalyzeFiles(ctx context.Context, filePaths []string) ([]domain.FileOutcome, error)
}

// Server представляет HTTP-сервер
type Server struct {
	HTTPServer *http.Server
	cfg        *config.Config
	taskStore  *TaskStore
	cacheStore *cache.CacheStore
	analyzer   ChatAnalyzer
}

// New создает новый экземпляр Server
func New(cfg *config.Config, analyzer ChatAnalyzer, taskStore *TaskStore, cacheStore *cache.CacheStore) (*Server, error) {
	chiRouter := chi.NewRouter()

	// Промежуточное ПО
	chiRouter.Use(middleware.Logger)
	chiRouter.Use(middleware.Recoverer)

	// Конечная точка для проверки работоспособности
	chiRouter.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	})

	// Маршруты API
	chiRouter.Route("/api/v1", func(r chi.Router) {
		// Конечная точка для запуска новой задачи анализа
		r.Post("/process", func(w http.ResponseWriter, r *http.Request) {
			maxUpload := int64(cfg.Server.MaxUploadSizeMB) << 20
			if err := r.ParseMultipartForm(maxUpload); err != nil {
				http.Error(w, "Не удалось разобрать форму", http.StatusBadRequest)
				return
			}

			files := r.MultipartForm.File["files"]
			if len(files) == 0 {
				http.Error(w, "Не передано ни одного файла", http.StatusBadRequest)
				return
			}

			taskID := uuid.NewString()

			// Сохранение загруженных файлов во временную директорию
			tempDir := os.TempDir()
			var tempFilePaths []string
			for i, header := range files {
				file, err := header.Open()
				if err != nil {
					http.Error(w, "Не удалось открыть загруженный файл", http.StatusBadRequest)
					return
				}

				tempFilePath := filepath.Join(tempDir, fmt.Sprintf("chat_%s_%d_%s", taskID, i, filepath.Base(header.Filename)))
				out, err := os.Create(tempFilePath)
				if err != nil {
					file.Close()
					http.Error(w, "Не удалось создать временный файл", http.StatusInternalServerError)
					return
				}

				if _, err := io.Copy(out, file); err != nil {
					file.Close()
					out.Close()
					http.Error(w, "Не удалось сохранить загруженный файл", http.StatusInternalServerError)
					return
				}
				file.Close()
				out.Close()

				tempFilePaths = append(tempFilePaths, tempFilePath)
			}

			taskStore.CreateTask(taskID, taskTTL)

			// Запуск анализа в горутине
			go func() {
				taskStore.UpdateTaskStatus(taskID, TaskStatusProcessing)

				// Временные файлы больше не нужны после завершения задачи.
				defer func() {
					for _, path := range tempFilePaths {
						os.Remove(path)
					}
				}()

				taskCtx := context.Background()
				if cfg.Processing.TaskTimeoutSeconds > 0 {
					var cancel context.CancelFunc
					taskCtx, cancel = context.WithTimeout(context.Background(), cfg.TaskTimeout())
					defer cancel()
				}

				outcomes, err := analyzer.AnalyzeFiles(taskCtx, tempFilePaths)
				if err != nil {
					taskStore.UpdateTaskError(taskID, err.Error())
					return
				}

				taskStore.UpdateTaskResult(taskID, outcomes)
			}()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{"task_id": taskID})
		})

		// Конечная точка для получения результата по хешу документа,
		// минуя повторную загрузку файла
		r.Post("/process-by-hash", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Hash string `json:"hash"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Не удалось декодировать тело запроса", http.StatusBadRequest)
				return
			}

			if req.Hash == "" {
				http.Error(w, "Требуется хеш", http.StatusBadRequest)
				return
			}

			taskID := uuid.NewString()
			taskStore.CreateTask(taskID, taskTTL)

			go func() {
				taskStore.UpdateTaskStatus(taskID, TaskStatusProcessing)

				if cachedItem, found := cacheStore.Get(req.Hash); found {
					taskStore.UpdateTaskResult(taskID, []domain.FileOutcome{
						{FileName: cachedItem.Data.FileName, Result: cachedItem.Data},
					})
					slog.Info("Попадание в кеш для хеша", "hash", req.Hash, "task_id", taskID)
					return
				}

				taskStore.UpdateTaskError(taskID, "Результат не найден в кеше для данного хеша")
				slog.Info("Промах кеша для хеша", "hash", req.Hash, "task_id", taskID)
			}()

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{"task_id": taskID})
		})

		// Конечная точка для проверки статуса задачи
		r.Get("/tasks/{taskID}", func(w http.ResponseWriter, r *http.Request) {
			taskID := chi.URLParam(r, "taskID")

			task, err := taskStore.GetTask(taskID)
			if err != nil {
				http.Error(w, "Задача не найдена", http.StatusNotFound)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"task_id":       task.ID,
				"status":        task.Status,
				"error_message": task.ErrorMessage,
			})
		})

		// Конечная точка для получения результата задачи
		r.Get("/tasks/{taskID}/result", func(w http.ResponseWriter, r *http.Request) {
			taskID := chi.URLParam(r, "taskID")

			task, err := taskStore.GetTask(taskID)
			if err != nil {
				http.Error(w, "Задача не найдена", http.StatusNotFound)
				return
			}

			if task.Status != TaskStatusCompleted {
				http.Error(w, "Задача не завершена", http.StatusBadRequest)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"task_id": task.ID,
				"files":   task.Result,
			})
		})
	})

	httpServer := &http.Server{
		Addr:    cfg.Address(),
		Handler: chiRouter,
	}

	return &Server{
		HTTPServer: httpServer,
		cfg:        cfg,
		taskStore:  taskStore,
		cacheStore: cacheStore,
		analyzer:   analyzer,
	}, nil
}

// ListenAndServe запускает HTTP-сервер
func (s *Server) ListenAndServe() error {
	return s.HTTPServer.ListenAndServe()
}

// Shutdown корректно останавливает HTTP-сервер
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTPServer.Shutdown(ctx)
}
