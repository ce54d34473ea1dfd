package handlers

import (
	"net/http"

	"github.com/soulnest/soulnest/pkg/httpext"
)

const Banner = "SoulNest API - Your safe emotional space 🤍"

func HandleRoot(w http.ResponseWriter, r *http.Request) {
	httpext.JsonResponse(w, http.StatusOK, map[string]string{"message": Banner})
}
