package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestFormatFieldsIsSorted(t *testing.T) {
	got := formatFields(Fields{"b": 2, "a": "x", "c": 1.5})
	assert.Equal(t, "{a=x, b=2, c=1.50}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevelsArePrefixed(t *testing.T) {
	buf := captureLog(t)

	Info("hello", Fields{"k": "v"})
	Warn("careful", nil)
	Debug("details", nil)
	Error("broken", errors.New("boom"), Fields{"request_id": "abc"})

	out := buf.String()
	assert.Contains(t, out, "[INFO] hello {k=v}")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[DEBUG] details")
	assert.Contains(t, out, "[ERROR] broken: boom {request_id=abc}")
}

func TestLogVoicing(t *testing.T) {
	buf := captureLog(t)

	LogVoicing(context.Background(), "C", "2b7", []string{"Db4", "F4"}, 3*time.Microsecond, nil)
	assert.Contains(t, buf.String(), "chord=2b7")
	assert.Contains(t, buf.String(), "notes=Db4 F4")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/voicings", nil)
	c.Set("request_id", "req-1")
	c.Set("user_id_str", "42")

	fields := WithContext(c)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/voicings", fields["path"])
	assert.Equal(t, "42", fields["user_id"])
}
