package tour

// Config holds the names used by the demonstration sequence.
type Config struct {
	// PrimaryBucket is an existing bucket holding CopyFile.
	PrimaryBucket string `mapstructure:"primary_bucket" default:"fpmlil"`
	// TransientBucket is created and deleted by the tour. Empty generates tour-<random>.
	TransientBucket string `mapstructure:"transient_bucket" default:""`
	// UploadDir is the local directory containing UploadFile.
	UploadDir string `mapstructure:"upload_dir" default:"."`
	// DownloadDir is where CopyFile is downloaded to.
	DownloadDir string `mapstructure:"download_dir" default:"downloads"`
	// UploadFile is uploaded into the transient bucket.
	UploadFile string `mapstructure:"upload_file" default:"lil2.txt"`
	// CopyFile is copied from the primary bucket and downloaded.
	CopyFile string `mapstructure:"copy_file" default:"lil1.txt"`
}
