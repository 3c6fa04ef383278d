package httpapi

import (
	"net/http"

	"github.com/calidadsoft/loginbackend/internal/server/passwords"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type resetRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

type resetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, loginResponse{Message: "invalid request body"})
		return
	}

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, loginResponse{Message: "internal error"})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, loginResponse{Success: result.Success, Token: result.Token, Message: result.Message})
}

func (s *Server) resetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resetResponse{Message: "invalid request body"})
		return
	}

	result, err := s.auth.ResetPassword(ctx, req.Email, req.Token, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		c.JSON(http.StatusInternalServerError, resetResponse{Message: "internal error"})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	c.JSON(status, resetResponse{Success: result.Success, Message: result.Message})
}

func (s *Server) passwordRequirements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"requirements": passwords.Requirements()})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
