package ports

import "context"

// ImageBuilder defines operations for building the application image.
type ImageBuilder interface {
	// BuildImage builds an image tagged imageName from the given context
	// directory and returns the tag.
	BuildImage(ctx context.Context, contextDir string, imageName string) (string, error)
	// BuildImageFromRepo clones a git repository and builds the image from
	// its working tree.
	BuildImageFromRepo(ctx context.Context, repoURL string, imageName string) (string, error)
}
