package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage providers
const (
	StorageProviderBlob       = "blob"
	StorageProviderCloudinary = "cloudinary"
)

// Admin auth providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Upload folders inside the image bucket
const (
	UploadFolderProfile = "profiles"
	UploadFolderCover   = "covers"
	UploadFolderGallery = "gallery"
)

// PushPath is where the image worker receives Pub/Sub pushes
const PushPath = "/push"

// Environments that skip production-only checks such as push token verification
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
