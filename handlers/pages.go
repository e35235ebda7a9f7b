// pages.go - Minimal navigational routes the session gate acts on
// The real pages are rendered by the frontend; these stubs exist so the
// gate's redirect/allow decisions have concrete routes behind them.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginPage - GET /login
func LoginPage(c *gin.Context) {
	c.String(http.StatusOK, "login")
}

// HomePage - GET /
func HomePage(c *gin.Context) {
	c.String(http.StatusOK, "home")
}

// CaseStudyPage - GET /case-studies/:slug
func CaseStudyPage(c *gin.Context) {
	c.String(http.StatusOK, "case study: %s", c.Param("slug"))
}
