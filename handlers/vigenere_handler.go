// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"vigenere-backend/crypto"
	"vigenere-backend/middleware"
	"vigenere-backend/models"
)

const Version = "1.0.0"

// Limits are the boundary checks applied before the cipher runs. Lengths
// are counted in characters, not bytes.
type Limits struct {
	MinKeyLength  int
	MaxKeyLength  int
	MaxTextLength int
}

type VigenereHandler struct {
	cipher *crypto.Vigenere
	logger *zap.Logger
	limits Limits
}

func NewVigenereHandler(cipher *crypto.Vigenere, logger *zap.Logger, limits Limits) *VigenereHandler {
	if cipher == nil {
		cipher = crypto.NewVigenere()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VigenereHandler{
		cipher: cipher,
		logger: logger,
		limits: limits,
	}
}

func (h *VigenereHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, models.InfoResponse{
		Name:        "Vigenère Cipher API",
		Version:     Version,
		Description: "REST API to encrypt and decrypt text with the Vigenère cipher",
		Endpoints: map[string]string{
			"POST /api/vigenere/cifrar":    "Encrypt text",
			"POST /api/vigenere/descifrar": "Decrypt text",
			"GET /api/health":              "Health check",
		},
	})
}

func (h *VigenereHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "Vigenère API is running",
		Version: Version,
	})
}

func (h *VigenereHandler) Encrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	ciphertext, err := h.cipher.Encrypt(req.Text, req.Key)
	if err != nil {
		h.writeCipherError(c, "encrypt", err)
		return
	}

	original := utf8.RuneCountInString(req.Text)
	length := utf8.RuneCountInString(ciphertext)
	discarded := h.cipher.Discarded(req.Text)
	h.logger.Info("text encrypted",
		zap.Int("original_length", original),
		zap.Int("ciphertext_length", length),
		zap.Int("discarded", discarded),
		zap.String("request_id", middleware.GetRequestID(c)),
	)

	c.JSON(http.StatusOK, models.EncryptResponse{
		Ciphertext:       ciphertext,
		OriginalLength:   original,
		CiphertextLength: length,
		Discarded:        discarded,
	})
}

func (h *VigenereHandler) Decrypt(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	plaintext, err := h.cipher.Decrypt(req.Text, req.Key)
	if err != nil {
		h.writeCipherError(c, "decrypt", err)
		return
	}

	ciphertextLength := utf8.RuneCountInString(req.Text)
	length := utf8.RuneCountInString(plaintext)
	discarded := h.cipher.Discarded(req.Text)
	h.logger.Info("text decrypted",
		zap.Int("ciphertext_length", ciphertextLength),
		zap.Int("plaintext_length", length),
		zap.Int("discarded", discarded),
		zap.String("request_id", middleware.GetRequestID(c)),
	)

	c.JSON(http.StatusOK, models.DecryptResponse{
		Plaintext:        plaintext,
		CiphertextLength: ciphertextLength,
		PlaintextLength:  length,
		Discarded:        discarded,
	})
}

// NotFound and MethodNotAllowed replace gin's plain text defaults.
func (h *VigenereHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Error: models.MsgNotFound})
}

func (h *VigenereHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: models.MsgMethodNotAllowed})
}

// bindRequest decodes the body and applies the length policy. It writes the
// 400 response itself and reports false when the request is rejected.
func (h *VigenereHandler) bindRequest(c *gin.Context) (models.CipherRequest, bool) {
	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.reject(c, models.MsgMissingFields)
		} else {
			h.reject(c, models.MsgInvalidBody)
		}
		return req, false
	}

	trimmedKey := strings.TrimSpace(req.Key)
	switch keyLen := utf8.RuneCountInString(trimmedKey); {
	case keyLen == 0:
		h.reject(c, models.MsgEmptyKey)
		return req, false
	case keyLen < h.limits.MinKeyLength:
		h.reject(c, fmt.Sprintf("key must be at least %d characters long", h.limits.MinKeyLength))
		return req, false
	case h.limits.MaxKeyLength > 0 && keyLen > h.limits.MaxKeyLength:
		h.reject(c, fmt.Sprintf("key cannot exceed %d characters", h.limits.MaxKeyLength))
		return req, false
	}

	if h.limits.MaxTextLength > 0 && utf8.RuneCountInString(req.Text) > h.limits.MaxTextLength {
		h.reject(c, fmt.Sprintf("text cannot exceed %d characters", h.limits.MaxTextLength))
		return req, false
	}

	return req, true
}

func (h *VigenereHandler) reject(c *gin.Context, msg string) {
	h.logger.Warn("request rejected",
		zap.String("reason", msg),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msg})
}

func (h *VigenereHandler) writeCipherError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, crypto.ErrEmptyKey):
		h.reject(c, models.MsgKeyWithoutAlpha)
	case errors.Is(err, crypto.ErrInvalidCharacter):
		h.reject(c, err.Error())
	default:
		h.logger.Error("cipher failed",
			zap.String("operation", op),
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgInternalError})
	}
}
