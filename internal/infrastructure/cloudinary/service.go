package cloudinary

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service provides Cloudinary upload operations
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult contains information about an uploaded file
type UploadResult struct {
	PublicID     string    `json:"public_id"`
	SecureURL    string    `json:"secure_url"`
	URL          string    `json:"url"`
	Format       string    `json:"format"`
	ResourceType string    `json:"resource_type"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Bytes        int       `json:"bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

// UploadOptions provides options for uploading files
type UploadOptions struct {
	Folder         string
	PublicID       string
	Overwrite      bool
	UniqueFilename bool
	Transformation string
	Tags           []string
	ResourceType   string
	AllowedFormats []string
}

// NewService creates a new Cloudinary service
func NewService(config *Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cloudinary config: %w", err)
	}

	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &Service{
		cld:          cld,
		uploadFolder: config.UploadFolder,
	}, nil
}

// UploadFile uploads a file to Cloudinary
func (s *Service) UploadFile(ctx context.Context, file io.Reader, opts *UploadOptions) (*UploadResult, error) {
	if opts == nil {
		opts = &UploadOptions{}
	}

	folder := s.uploadFolder
	if opts.Folder != "" {
		folder = path.Join(folder, opts.Folder)
	}

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		UniqueFilename: api.Bool(opts.UniqueFilename),
		Overwrite:      api.Bool(opts.Overwrite),
	}

	if opts.PublicID != "" {
		uploadParams.PublicID = opts.PublicID
	}
	if opts.Transformation != "" {
		uploadParams.Transformation = opts.Transformation
	}
	if len(opts.Tags) > 0 {
		uploadParams.Tags = api.CldAPIArray(opts.Tags)
	}
	if opts.ResourceType != "" {
		uploadParams.ResourceType = opts.ResourceType
	} else {
		uploadParams.ResourceType = "auto"
	}
	if len(opts.AllowedFormats) > 0 {
		uploadParams.AllowedFormats = opts.AllowedFormats
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("cloudinary upload failed: empty public ID (check credentials)")
	}

	return &UploadResult{
		PublicID:     result.PublicID,
		SecureURL:    result.SecureURL,
		URL:          result.URL,
		Format:       result.Format,
		ResourceType: result.ResourceType,
		Width:        result.Width,
		Height:       result.Height,
		Bytes:        result.Bytes,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// UploadMultipartFile uploads a multipart file to Cloudinary
func (s *Service) UploadMultipartFile(ctx context.Context, fileHeader *multipart.FileHeader, opts *UploadOptions) (*UploadResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open multipart file: %w", err)
	}
	defer file.Close()

	return s.UploadFile(ctx, file, opts)
}

// DeleteFile removes an uploaded file by its public ID
func (s *Service) DeleteFile(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("publicID cannot be empty")
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
