package facade

import (
	"bytes"
	"net/url"

	"storage-facade/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler exposes the facade over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CopyRequest is the body of POST /copy.
type CopyRequest struct {
	SourceBucket      string `json:"source_bucket"`
	SourceKey         string `json:"source_key"`
	DestinationBucket string `json:"destination_bucket"`
	DestinationKey    string `json:"destination_key"`
}

// RegisterRoutes registers the storage routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Put("/:bucket", h.HandleCreateBucket)
	group.Delete("/:bucket", h.HandleDeleteBucket)
	group.Put("/:bucket/public-access-block", h.HandleBlockPublicAccess)
	// Listing must be registered before the wildcard object routes.
	group.Get("/:bucket/objects", h.HandleListObjects)
	group.Put("/:bucket/objects/*", h.HandlePutObject)
	group.Get("/:bucket/objects/*", h.HandleGetObject)
	group.Delete("/:bucket/objects/*", h.HandleDeleteObject)
	group.Get("/:bucket/presign/*", h.HandlePresign)

	app.Post("/copy", h.HandleCopy)
}

// HandleCreateBucket creates a bucket.
// @Summary Create Bucket
// @Tags buckets
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 201 {object} map[string]string
// @Failure 409 {object} map[string]string "Bucket already exists"
// @Router /buckets/{bucket} [put]
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	if err := h.service.CreateBucket(c.UserContext(), bucket); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bucket": bucket})
}

// HandleDeleteBucket deletes a bucket.
// @Summary Delete Bucket
// @Description Deletes an empty bucket. With recursive=true every key is deleted first and the bucket is kept if any deletion fails.
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Param recursive query bool false "Delete all keys first"
// @Success 204
// @Failure 409 {object} map[string]string "Bucket not empty"
// @Router /buckets/{bucket} [delete]
func (h *Handler) HandleDeleteBucket(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	var err error
	if c.QueryBool("recursive") {
		err = h.service.DeleteBucketRecursive(c.UserContext(), bucket)
	} else {
		err = h.service.DeleteBucket(c.UserContext(), bucket)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleBlockPublicAccess blocks public access on a bucket.
// @Summary Block Public Access
// @Tags buckets
// @Param bucket path string true "Bucket name"
// @Success 204
// @Failure 404 {object} map[string]string "Bucket not found"
// @Router /buckets/{bucket}/public-access-block [put]
func (h *Handler) HandleBlockPublicAccess(c *fiber.Ctx) error {
	if err := h.service.BlockPublicAccess(c.UserContext(), bucketParam(c)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListObjects lists every key in a bucket.
// @Summary List Objects
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Bucket not found"
// @Router /buckets/{bucket}/objects [get]
func (h *Handler) HandleListObjects(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	keys, err := h.service.ListFiles(c.UserContext(), bucket)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"bucket": bucket, "keys": keys})
}

// HandlePutObject stores the request body as an object.
// @Summary Upload Object
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 201 {object} map[string]string
// @Router /buckets/{bucket}/objects/{key} [put]
func (h *Handler) HandlePutObject(c *fiber.Ctx) error {
	bucket := bucketParam(c)
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, err)
	}
	body := c.Body()
	if err := h.service.Put(c.UserContext(), bucket, key, bytes.NewReader(body), int64(len(body))); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"bucket": bucket, "key": key})
}

// HandleGetObject streams an object.
// @Summary Download Object
// @Tags objects
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Object not found"
// @Router /buckets/{bucket}/objects/{key} [get]
func (h *Handler) HandleGetObject(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, err)
	}
	rc, err := h.service.Open(c.UserContext(), bucketParam(c), key)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	// fasthttp closes the stream once the body is written.
	return c.SendStream(rc)
}

// HandleDeleteObject deletes an object. Deleting an absent key succeeds.
// @Summary Delete Object
// @Tags objects
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 204
// @Router /buckets/{bucket}/objects/{key} [delete]
func (h *Handler) HandleDeleteObject(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.service.DeleteFile(c.UserContext(), bucketParam(c), key); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCopy copies an object between buckets.
// @Summary Copy Object
// @Tags objects
// @Accept json
// @Produce json
// @Param request body CopyRequest true "Source and destination"
// @Success 201 {object} CopyRequest
// @Failure 404 {object} map[string]string "Source not found"
// @Router /copy [post]
func (h *Handler) HandleCopy(c *fiber.Ctx) error {
	var req CopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "kind": KindInvalid.String()})
	}
	if req.DestinationKey == "" {
		req.DestinationKey = req.SourceKey
	}
	err := h.service.CopyFile(c.UserContext(), req.SourceBucket, req.DestinationBucket, req.SourceKey, req.DestinationKey)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

// HandlePresign issues a presigned GET URL.
// @Summary Presign Object
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key"
// @Success 200 {object} PresignedURL
// @Router /buckets/{bucket}/presign/{key} [get]
func (h *Handler) HandlePresign(c *fiber.Ctx) error {
	key, err := objectKey(c)
	if err != nil {
		return h.fail(c, err)
	}
	presigned, err := h.service.CreatePresignedURL(c.UserContext(), bucketParam(c), key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(presigned)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	kind := KindOf(err)
	status := StatusFor(kind)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Warn("Upstream storage failure", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error(), "kind": kind.String()})
}

// StatusFor maps a failure kind to an HTTP status code.
func StatusFor(kind Kind) int {
	switch kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindDenied:
		return fiber.StatusForbidden
	case KindInvalid:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadGateway
	}
}

// bucketParam returns the bucket path parameter. Fiber params point into the
// pooled request buffer, so the value is copied before it outlives the request.
func bucketParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("bucket"))
}

// objectKey returns the wildcard part of the path, percent-decoded.
func objectKey(c *fiber.Ctx) (string, error) {
	key, err := url.PathUnescape(utils.CopyString(c.Params("*")))
	if err != nil {
		return "", &OpError{Op: "parseKey", Bucket: bucketParam(c), Kind: KindInvalid, Err: err}
	}
	return key, nil
}
