package supabase

import "github.com/kaiquedev/washadmin/internal/models"

// Ответ административного API на запрос списка учетных записей.
type listUsersResponse struct {
	Users []models.UserAccount `json:"users"`
}
