package logic

import (
	"context"
	"post_bot/dto"
)

// LoadImages opens the picker for a post and fetches candidate images for its content.
// On failure the list is emptied but the picker stays open for a retry.
func (bm *botMode) LoadImages(ctx context.Context, postId string) ([]dto.Image, error) {

	post, ok := bm.posts.Get(postId)
	if !ok {
		return nil, ErrPostNotFound
	}
	if post.Content == nil {
		return nil, ErrPostNotEditable
	}

	bm.mu.Lock()
	bm.picker = &imagePicker{postId: postId, images: []dto.Image{}, loading: true}
	t := bm.dispatchLocked(actionImages)
	bm.mu.Unlock()

	req := dto.ImagePreviewRequest{PostContent: *post.Content, Count: bm.cfg.Bot.ImageCount}
	resp, err := bm.backend.PreviewImages(ctx, &req)

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if !bm.settleLocked(t) {
		return nil, ErrStaleResponse
	}
	if bm.picker == nil || bm.picker.postId != postId {
		return nil, ErrStaleResponse
	}
	bm.picker.loading = false
	if err != nil {
		bm.logger.Warnf("Loading images for post %s failed: %v", postId, err)
		bm.picker.images = []dto.Image{}
		bm.notices.Add(dto.NoticeError, bm.txt.WithVals("images-failed", map[string]string{"error": UserMessage(err)}))
		return nil, err
	}
	bm.picker.images = append([]dto.Image{}, resp.Images...)
	bm.logger.Debugf("Loaded %d images for post %s", len(resp.Images), postId)
	return append([]dto.Image{}, resp.Images...), nil
}

// SelectImage sets the image of the post the picker is open for. Nil clears it.
// Nothing goes to the backend until the post is published.
func (bm *botMode) SelectImage(imageUrl *string) (dto.Post, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.picker == nil {
		return dto.Post{}, ErrNoImageTarget
	}
	return bm.posts.SetImage(bm.picker.postId, imageUrl)
}

// CloseImages closes the picker. A load still in flight will be dropped.
func (bm *botMode) CloseImages() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.picker = nil
	bm.lastSeq[actionImages]++
	delete(bm.inFlight, actionImages)
}
