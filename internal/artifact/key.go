// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// defaultDisplayName is hashed in place of a display name when the uploader
// did not provide one.
const defaultDisplayName = "uploaded_image"

// uploadKeyPrefix marks keys derived from user-uploaded content.
const uploadKeyPrefix = "user_uploaded_img_"

// UploadKey derives the artifact key for an uploaded binary payload. The key
// is stable for identical (displayName, data) pairs so repeated uploads of
// the same content reuse the same artifact. The SHA-256 digest is truncated
// to 16 hex characters to keep keys readable in logs; the remaining
// collision chance is negligible at realistic artifact counts and is an
// accepted trade-off.
func UploadKey(displayName string, data []byte, mimeType string) string {
	if displayName == "" {
		displayName = defaultDisplayName
	}

	h := sha256.New()
	h.Write([]byte(displayName))
	h.Write(data)
	digest := hex.EncodeToString(h.Sum(nil))[:16]

	return uploadKeyPrefix + digest + "." + extensionForMIME(mimeType)
}

// extensionForMIME returns the file extension for a MIME type, which is the
// subtype, e.g. "jpeg" for "image/jpeg".
func extensionForMIME(mimeType string) string {
	if idx := strings.LastIndex(mimeType, "/"); idx >= 0 {
		return mimeType[idx+1:]
	}
	return mimeType
}
