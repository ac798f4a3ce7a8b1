package models

import "time"

// Album is a named collection of images with shared descriptive metadata.
// The slug derived from the object-store path is its primary key.
type Album struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Title       *string `gorm:"column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	Location    *string `gorm:"column:location" json:"location"`
	// Date is a loosely formatted string, never parsed.
	Date       *string   `gorm:"column:date" json:"date"`
	CoverImage *string   `gorm:"column:cover_image" json:"cover_image"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`

	Images []Image `gorm:"-" json:"images,omitempty"`
}

// TableName overrides the table name.
func (Album) TableName() string {
	return "albums"
}

// Image is a single photo. Its ID is the composite "{albumID}/{filename}".
// Star and Likes are user-editorial state: sync inserts them at their zero
// defaults and never overwrites them afterwards.
type Image struct {
	ID       string  `gorm:"column:id;primaryKey" json:"id"`
	AlbumID  string  `gorm:"column:album_id;index" json:"album_id"`
	URL      string  `gorm:"column:url;not null" json:"url"`
	Title    *string `gorm:"column:title" json:"title"`
	Location *string `gorm:"column:location" json:"location"`
	Date     *string `gorm:"column:date" json:"date"`
	// Position nil means "unordered"; readers fall back to creation order.
	Position  *int      `gorm:"column:position" json:"position"`
	Star      int       `gorm:"column:star;default:0" json:"star"`
	Likes     int       `gorm:"column:likes;default:0" json:"likes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Image) TableName() string {
	return "images"
}

// ExifRecord holds the extracted EXIF attributes of one image, one-to-one
// with Image. RawData keeps the full source entry serialized for
// forward-compatibility.
type ExifRecord struct {
	ImageID      string   `gorm:"column:image_id;primaryKey" json:"image_id"`
	CameraModel  *string  `gorm:"column:camera_model" json:"camera_model"`
	LensModel    *string  `gorm:"column:lens_model" json:"lens_model"`
	FNumber      *float64 `gorm:"column:f_number" json:"f_number"`
	ExposureTime *string  `gorm:"column:exposure_time" json:"exposure_time"`
	ISO          *int     `gorm:"column:iso" json:"iso"`
	FocalLength  *string  `gorm:"column:focal_length" json:"focal_length"`
	Location     *string  `gorm:"column:location" json:"location"`
	// DateTime is the EXIF-style capture timestamp "YYYY:MM:DD HH:MM:SS".
	DateTime    *string   `gorm:"column:date_time" json:"date_time"`
	Orientation *string   `gorm:"column:orientation" json:"orientation"`
	Latitude    *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64  `gorm:"column:longitude" json:"longitude"`
	RawData     string    `gorm:"column:raw_data" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (ExifRecord) TableName() string {
	return "exif_data"
}

// Operation statuses. PartialSuccess marks runs where albums succeeded but
// EXIF ingestion failed.
const (
	StatusInfo           = "info"
	StatusSuccess        = "success"
	StatusWarning        = "warning"
	StatusError          = "error"
	StatusPartialSuccess = "partial_success"
)

// Operation categories written by the sync pipeline.
const (
	CategoryAlbums   = "albums"
	CategoryExif     = "exif"
	CategoryWebhook  = "webhook"
	CategoryProgress = "progress"
	CategoryUpload   = "upload"
)

// Operation is one append-only entry of the operation log. Entries are never
// updated or deleted; consumers poll the most recent N to render sync state.
type Operation struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Category string `gorm:"column:type;index" json:"type"`
	Status   string `gorm:"column:status;not null" json:"status"`
	Message  string `gorm:"column:message" json:"message"`
	// Progress is a fractional completion indicator (0-100), nil when the
	// entry is not a progress milestone.
	Progress  *float64  `gorm:"column:progress" json:"progress"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Operation) TableName() string {
	return "updates"
}

// Setting is a simple key/value pair, last-writer-wins.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey" json:"key"`
	Value     string    `gorm:"column:value" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Setting) TableName() string {
	return "settings"
}

// GeotaggedPhoto is the map-view projection of an image joined with its
// EXIF coordinates.
type GeotaggedPhoto struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	AlbumTitle  *string  `json:"album_title"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	DateTime    *string  `json:"date_time"`
	CameraModel *string  `json:"camera_model"`
}
