package utils

import (
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ObjectKey builds a stable object key like "kyc/john-doe/8f3a....png" from a
// display name and the uploaded filename. The slug keeps keys readable, the
// uuid keeps them unique.
func ObjectKey(prefix, displayName, filename string) string {
	name := slug.Make(displayName)
	if name == "" {
		name = "unknown"
	}
	return path.Join(prefix, name, uuid.NewString()+filepath.Ext(filename))
}

// StoreUpload persists a multipart upload to R2 when configured, otherwise to
// the local uploads directory, and returns the URL to store alongside the row.
func StoreUpload(fileHeader *multipart.FileHeader, key string) (string, error) {
	if R2Enabled() {
		return UploadFileToR2(fileHeader, key)
	}
	dest := GetUploadPath(filepath.FromSlash(key))
	if err := SaveFile(fileHeader, dest); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s", key), nil
}
