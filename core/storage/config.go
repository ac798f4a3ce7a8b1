package storage

// Config holds configuration for the object storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding the gallery.
	Bucket string `mapstructure:"bucket" default:"photos"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Domain is the public download domain used to build image URLs
	// (e.g., cdn.example.com). Sync refuses to run without it.
	Domain string `mapstructure:"domain" default:""`
	// GalleryPrefix is the key prefix under which albums live.
	GalleryPrefix string `mapstructure:"gallery_prefix" default:"gallery"`
	// ExifObjectKey is the key of the bucket-wide EXIF document.
	ExifObjectKey string `mapstructure:"exif_object_key" default:"gallery/exif_data.json"`
	// TimeoutSeconds bounds each request to the storage service.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
}
