package file

import (
	"encoding/xml"
	"io"
)

// BasePath is where the upload and download routes are mounted.
const BasePath = "/api/file/v1"

// Upload is one incoming file, independent of how the transport received it.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadResponseDTO describes a stored file and where to fetch it.
type UploadResponseDTO struct {
	XMLName         xml.Name `json:"-" xml:"uploadFile" yaml:"-"`
	FileName        string   `json:"fileName" xml:"fileName" yaml:"fileName"`
	FileDownloadURI string   `json:"fileDownloadUri" xml:"fileDownloadUri" yaml:"fileDownloadUri"`
	FileType        string   `json:"fileType" xml:"fileType" yaml:"fileType"`
	FileSize        int64    `json:"fileSize" xml:"fileSize" yaml:"fileSize"`
}

// UploadListDTO wraps several upload results so XML has a single root.
type UploadListDTO struct {
	XMLName xml.Name            `json:"-" xml:"uploadFiles" yaml:"-"`
	Files   []UploadResponseDTO `json:"files" xml:"uploadFile" yaml:"files"`
}
