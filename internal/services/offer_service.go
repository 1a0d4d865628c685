package services

import (
	"fmt"

	"servio_backend/internal/auth"
	"servio_backend/internal/logger"
	"servio_backend/internal/models"
	"servio_backend/internal/ordering"
	"servio_backend/internal/pricing"
	"servio_backend/internal/repositories"
	"servio_backend/internal/services/dto"
	"servio_backend/pkg/apperrors"
)

// DefaultPageSize is both the default and the ceiling for offer listings.
// Clients may shrink a page, never grow it.
const DefaultPageSize = 6

const (
	msgFieldRequired      = "Dieses Feld darf nicht leer sein."
	msgDeliveryTimeTooLow = "Eingegebene Lieferzeit muss mindestens 1 Tag betragen."
	msgPriceTooLow        = "Eingegebener Preis muss höher als 1 sein."
	msgRevisionsInvalid   = "Eingegebene Anzahl der Revisionen muss eine positive Zahl sein."
	msgFeaturesEmpty      = "Mindestens eine Feature muss vorhanden sein."
	msgOfferTypeInvalid   = "Der eingegebene Wert ist ungültig."
	msgTierSetIncomplete  = "Ein Angebot muss genau die Typen basic, standard und premium enthalten."
	msgBusinessRequired   = "Nur Geschäftskunden ist die Erstellung von Angeboten erlaubt."
	msgOfferMutateDenied  = "Nur der Ersteller oder ein Admin kann dieses Angebot bearbeiten."
	msgOfferDeleteDenied  = "Nur der Ersteller oder ein Admin kann dieses Angebot entfernen."
	msgOfferNotFound      = "Das angegebene Angebot existiert nicht."
	msgDetailNotFound     = "Das angegebene Angebotsdetail existiert nicht."
)

type OfferService interface {
	Create(actorID string, req *dto.CreateOfferRequest) (*dto.OfferCreateView, error)
	Get(id string) (*dto.OfferReadView, error)
	GetDetail(id string) (*dto.OfferDetailResponse, error)
	List(params dto.ListOffersParams) (*dto.OfferListResponse, error)
	Update(actorID string, isStaff bool, id string, req *dto.UpdateOfferRequest) (*dto.OfferCreateView, error)
	Delete(actorID string, isStaff bool, id string) error
}

type OfferServiceImpl struct {
	offerRepo   repositories.OfferRepository
	profileRepo repositories.ProfileRepository
}

func NewOfferService(offerRepo repositories.OfferRepository, profileRepo repositories.ProfileRepository) OfferService {
	return &OfferServiceImpl{offerRepo: offerRepo, profileRepo: profileRepo}
}

// Create stores a new offer with its three tiers. Only business users may
// publish offers; every tier is validated and all failures are reported in
// one aggregated response.
func (s *OfferServiceImpl) Create(actorID string, req *dto.CreateOfferRequest) (*dto.OfferCreateView, error) {
	profile, err := s.profileRepo.FindByUserID(actorID)
	if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if !auth.IsBusiness(profile) {
		return nil, apperrors.NewForbiddenError(msgBusinessRequired)
	}

	var messages []string
	if req.Title == "" {
		messages = append(messages, msgFieldRequired)
	}
	messages = append(messages, validateTierSet(req.Details)...)
	for i := range req.Details {
		messages = append(messages, validateDetail(&req.Details[i], true)...)
	}
	if len(messages) > 0 {
		return nil, apperrors.ValidationError(messages...)
	}

	offer := &models.Offer{
		UserID:      actorID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for i := range req.Details {
		offer.Details = append(offer.Details, detailFromRequest(&req.Details[i]))
	}

	if err := s.offerRepo.Create(offer); err != nil {
		logger.Error("failed to create offer", "user_id", actorID, "error", err)
		return nil, apperrors.InternalError(err)
	}
	return buildOfferCreateView(offer), nil
}

func (s *OfferServiceImpl) Get(id string) (*dto.OfferReadView, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError(msgOfferNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	view := buildOfferReadView(offer)
	return &view, nil
}

func (s *OfferServiceImpl) GetDetail(id string) (*dto.OfferDetailResponse, error) {
	detail, err := s.offerRepo.FindDetailByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferDetailNotFound) {
			return nil, apperrors.NewNotFoundError(msgDetailNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := buildDetailResponse(detail)
	return &resp, nil
}

// List filters, orders and paginates offers. The creator, delivery time and
// search filters run in SQL; the aggregated min_price filter and the ordering
// run over the loaded set because both depend on the per-offer tier minimum.
func (s *OfferServiceImpl) List(params dto.ListOffersParams) (*dto.OfferListResponse, error) {
	offers, err := s.offerRepo.List(repositories.OfferFilter{
		CreatorID:       params.CreatorID,
		MaxDeliveryTime: params.MaxDeliveryTime,
		Search:          params.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if params.MinPrice != nil {
		filtered := offers[:0]
		for _, offer := range offers {
			min := offerMinPrice(&offer)
			if min != nil && *min >= *params.MinPrice {
				filtered = append(filtered, offer)
			}
		}
		offers = filtered
	}

	offers = ordering.Offers(offers, params.Ordering)

	page, pageSize := clampPage(params.Page, params.PageSize)
	total := int64(len(offers))
	start := (page - 1) * pageSize
	if start > len(offers) {
		start = len(offers)
	}
	end := start + pageSize
	if end > len(offers) {
		end = len(offers)
	}

	results := make([]dto.OfferReadView, 0, end-start)
	for i := start; i < end; i++ {
		results = append(results, buildOfferReadView(&offers[i]))
	}
	return &dto.OfferListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}, nil
}

// Update patches the top-level fields and, when a non-empty details array is
// present, reconciles the tier set: update by id, create unmatched, delete
// unreferenced. An empty array is treated like an absent one and leaves the
// tiers alone. Validation failures abort before any write.
func (s *OfferServiceImpl) Update(actorID string, isStaff bool, id string, req *dto.UpdateOfferRequest) (*dto.OfferCreateView, error) {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError(msgOfferNotFound)
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.IsOwnerOrAdmin(actorID, offer.UserID, isStaff) {
		return nil, apperrors.NewForbiddenError(msgOfferMutateDenied)
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Image != nil {
		offer.Image = req.Image
	}

	var rec *repositories.DetailReconciliation
	if req.Details != nil && len(*req.Details) > 0 {
		rec, err = s.planReconciliation(offer, *req.Details)
		if err != nil {
			return nil, err
		}
	}

	if err := s.offerRepo.Update(offer, rec); err != nil {
		logger.Error("failed to update offer", "offer_id", id, "error", err)
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.offerRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildOfferCreateView(updated), nil
}

// planReconciliation matches the incoming detail array against the stored
// tier set. Incoming entries with a known id update that tier in place,
// entries without one become new tiers, and stored tiers absent from the
// array are scheduled for deletion.
func (s *OfferServiceImpl) planReconciliation(offer *models.Offer, incoming []dto.OfferDetailRequest) (*repositories.DetailReconciliation, error) {
	existing := make(map[string]*models.OfferDetail, len(offer.Details))
	for i := range offer.Details {
		existing[offer.Details[i].ID] = &offer.Details[i]
	}

	rec := &repositories.DetailReconciliation{}
	referenced := make(map[string]bool, len(incoming))
	var messages []string

	for i := range incoming {
		in := &incoming[i]
		if in.ID != nil {
			if current, ok := existing[*in.ID]; ok {
				referenced[*in.ID] = true
				updated := applyDetailPatch(current, in)
				messages = append(messages, validateStoredDetail(&updated)...)
				rec.Update = append(rec.Update, updated)
				continue
			}
		}
		messages = append(messages, validateDetail(in, true)...)
		detail := detailFromRequest(in)
		detail.OfferID = offer.ID
		rec.Create = append(rec.Create, detail)
	}

	for id := range existing {
		if !referenced[id] {
			rec.DeleteIDs = append(rec.DeleteIDs, id)
		}
	}

	if len(messages) > 0 {
		return nil, apperrors.ValidationError(messages...)
	}
	return rec, nil
}

// Delete removes an offer and its tiers. Allowed for the owner, or for a
// staff user who also carries a business profile.
func (s *OfferServiceImpl) Delete(actorID string, isStaff bool, id string) error {
	offer, err := s.offerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOfferNotFound) {
			return apperrors.NewNotFoundError(msgOfferNotFound)
		}
		return apperrors.InternalError(err)
	}

	if offer.UserID != actorID {
		profile, perr := s.profileRepo.FindByUserID(actorID)
		if perr != nil && !apperrors.Is(perr, repositories.ErrProfileNotFound) {
			return apperrors.InternalError(perr)
		}
		if !(isStaff && auth.IsBusiness(profile)) {
			return apperrors.NewForbiddenError(msgOfferDeleteDenied)
		}
	}

	if err := s.offerRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrOfferNotFound) {
			return apperrors.NewNotFoundError(msgOfferNotFound)
		}
		logger.Error("failed to delete offer", "offer_id", id, "error", err)
		return apperrors.InternalError(err)
	}
	return nil
}

// --- validation ---

// validateTierSet requires exactly the three tiers basic/standard/premium,
// each once.
func validateTierSet(details []dto.OfferDetailRequest) []string {
	seen := make(map[models.OfferType]int, len(models.OfferTypes))
	for i := range details {
		seen[models.OfferType(details[i].OfferType)]++
	}
	if len(details) != len(models.OfferTypes) {
		return []string{msgTierSetIncomplete}
	}
	for _, t := range models.OfferTypes {
		if seen[t] != 1 {
			return []string{msgTierSetIncomplete}
		}
	}
	return nil
}

// validateDetail collects every failing field of one tier instead of stopping
// at the first.
func validateDetail(d *dto.OfferDetailRequest, requireAll bool) []string {
	var messages []string
	if d.Title == "" && requireAll {
		messages = append(messages, msgFieldRequired)
	}
	switch {
	case d.Price == nil:
		if requireAll {
			messages = append(messages, msgFieldRequired)
		}
	case *d.Price <= 1:
		messages = append(messages, msgPriceTooLow)
	}
	switch {
	case d.DeliveryTimeInDays == nil:
		if requireAll {
			messages = append(messages, msgFieldRequired)
		}
	case *d.DeliveryTimeInDays < 1:
		messages = append(messages, msgDeliveryTimeTooLow)
	}
	switch {
	case d.Revisions == nil:
		if requireAll {
			messages = append(messages, msgFieldRequired)
		}
	case *d.Revisions < -1:
		messages = append(messages, msgRevisionsInvalid)
	}
	if requireAll && len(d.Features) == 0 {
		messages = append(messages, msgFeaturesEmpty)
	}
	if d.OfferType != "" && !validOfferType(d.OfferType) {
		messages = append(messages, msgOfferTypeInvalid)
	}
	return messages
}

// validateStoredDetail re-checks a tier after a patch has been applied, so a
// partial update cannot push a stored tier out of range.
func validateStoredDetail(d *models.OfferDetail) []string {
	var messages []string
	if d.Title == "" {
		messages = append(messages, msgFieldRequired)
	}
	if d.Price <= 1 {
		messages = append(messages, msgPriceTooLow)
	}
	if d.DeliveryTimeInDays < 1 {
		messages = append(messages, msgDeliveryTimeTooLow)
	}
	if d.Revisions < -1 {
		messages = append(messages, msgRevisionsInvalid)
	}
	if len(dto.ParseFeatures(d.Features)) == 0 {
		messages = append(messages, msgFeaturesEmpty)
	}
	if !validOfferType(string(d.OfferType)) {
		messages = append(messages, msgOfferTypeInvalid)
	}
	return messages
}

func validOfferType(t string) bool {
	for _, known := range models.OfferTypes {
		if models.OfferType(t) == known {
			return true
		}
	}
	return false
}

// --- mapping ---

func detailFromRequest(in *dto.OfferDetailRequest) models.OfferDetail {
	detail := models.OfferDetail{
		Title:     in.Title,
		Features:  dto.FormatFeatures(in.Features),
		OfferType: models.OfferType(in.OfferType),
	}
	if in.Price != nil {
		detail.Price = pricing.Round2(*in.Price)
	}
	if in.DeliveryTimeInDays != nil {
		detail.DeliveryTimeInDays = *in.DeliveryTimeInDays
	}
	if in.Revisions != nil {
		detail.Revisions = *in.Revisions
	}
	return detail
}

func applyDetailPatch(current *models.OfferDetail, in *dto.OfferDetailRequest) models.OfferDetail {
	updated := *current
	if in.Title != "" {
		updated.Title = in.Title
	}
	if in.Price != nil {
		updated.Price = pricing.Round2(*in.Price)
	}
	if in.DeliveryTimeInDays != nil {
		updated.DeliveryTimeInDays = *in.DeliveryTimeInDays
	}
	if in.Revisions != nil {
		updated.Revisions = *in.Revisions
	}
	if in.Features != nil {
		updated.Features = dto.FormatFeatures(in.Features)
	}
	if in.OfferType != "" {
		updated.OfferType = models.OfferType(in.OfferType)
	}
	return updated
}

func buildDetailResponse(d *models.OfferDetail) dto.OfferDetailResponse {
	return dto.OfferDetailResponse{
		ID:                 d.ID,
		Title:              d.Title,
		Price:              d.Price,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Revisions:          d.Revisions,
		Features:           dto.ParseFeatures(d.Features),
		OfferType:          string(d.OfferType),
	}
}

func buildOfferCreateView(offer *models.Offer) *dto.OfferCreateView {
	view := &dto.OfferCreateView{
		ID:          offer.ID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		Details:     make([]dto.OfferDetailResponse, 0, len(offer.Details)),
	}
	for i := range offer.Details {
		view.Details = append(view.Details, buildDetailResponse(&offer.Details[i]))
	}
	return view
}

func buildOfferReadView(offer *models.Offer) dto.OfferReadView {
	view := dto.OfferReadView{
		ID:          offer.ID,
		User:        offer.UserID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
		Details:     make([]dto.OfferDetailLink, 0, len(offer.Details)),
		UserDetails: dto.OfferUserDetails{
			Username: offer.User.Username,
		},
	}
	if offer.User.Profile != nil {
		view.UserDetails.FirstName = offer.User.Profile.FirstName
		view.UserDetails.LastName = offer.User.Profile.LastName
	}

	var prices []float64
	var days []int
	for i := range offer.Details {
		d := &offer.Details[i]
		view.Details = append(view.Details, dto.OfferDetailLink{
			ID:  d.ID,
			URL: fmt.Sprintf("/api/offerdetails/%s/", d.ID),
		})
		prices = append(prices, d.Price)
		days = append(days, d.DeliveryTimeInDays)
	}
	view.MinPrice = pricing.MinPrice(prices)
	view.MinDeliveryTime = pricing.MinDeliveryTime(days)
	return view
}

func offerMinPrice(offer *models.Offer) *float64 {
	var prices []float64
	for i := range offer.Details {
		prices = append(prices, offer.Details[i].Price)
	}
	return pricing.MinPrice(prices)
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}
