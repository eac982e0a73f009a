// Package dto defines data transfer objects for the settings feature's HTTP transport layer.
package dto

// SetThemeReq represents the body for the POST /settings/set-theme
// endpoint. The page form posts it URL-encoded; the page script posts JSON.
type SetThemeReq struct {
	Theme string `form:"theme" json:"theme"`
}
