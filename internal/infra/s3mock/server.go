package s3mock

import (
	"encoding/xml"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
)

// Server speaks just enough of the S3 REST protocol (path style) for the
// thumbnail storage: bucket HEAD and object PUT, GET, HEAD and DELETE.
// Every bucket exists.
type Server struct {
	data *sync.Map
	mux  *http.ServeMux
}

type objectData struct {
	Content     []byte
	ContentType string
}

type errorResponse struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}

func NewServer() *Server {
	s := &Server{
		data: &sync.Map{},
		mux:  http.NewServeMux(),
	}

	s.mux.HandleFunc("HEAD /{bucket}", s.headBucket)
	s.mux.HandleFunc("GET /{bucket}/{key...}", s.getObject)
	s.mux.HandleFunc("PUT /{bucket}/{key...}", s.putObject)
	s.mux.HandleFunc("DELETE /{bucket}/{key...}", s.deleteObject)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Len reports how many objects are stored across all buckets.
func (s *Server) Len() int {
	n := 0
	s.data.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func objectKey(r *http.Request) string {
	return r.PathValue("bucket") + "/" + r.PathValue("key")
}

func (s *Server) headBucket(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// getObject also serves HEAD requests on objects.
func (s *Server) getObject(w http.ResponseWriter, r *http.Request) {
	obj, ok := s.data.Load(objectKey(r))
	if !ok {
		writeError(w, http.StatusNotFound, "NoSuchKey", "The specified key does not exist.")
		return
	}

	o := obj.(*objectData)
	contentType := o.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(o.Content)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(o.Content)
	}
}

func (s *Server) putObject(w http.ResponseWriter, r *http.Request) {
	content, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "IncompleteBody", err.Error())
		return
	}

	s.data.Store(objectKey(r), &objectData{
		Content:     content,
		ContentType: r.Header.Get("Content-Type"),
	})
	log.Printf("[mocks3] stored %s (%d bytes)", objectKey(r), len(content))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) deleteObject(w http.ResponseWriter, r *http.Request) {
	s.data.Delete(objectKey(r))
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_ = xml.NewEncoder(w).Encode(errorResponse{Code: code, Message: message})
}
