package repository

import (
	"database/sql"
	"fmt"

	"saferide/internal/database"
	"saferide/internal/models"
)

// DocumentRepository handles database operations for verification documents
type DocumentRepository struct {
	db *database.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *database.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// CreateDocument inserts a new verification document
func (r *DocumentRepository) CreateDocument(doc *models.VerificationDocument) error {
	query := `
		INSERT INTO verification_documents (id, parent_id, document_type, document_url, uploaded_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		doc.ID,
		doc.ParentID,
		doc.DocumentType,
		doc.DocumentURL,
		doc.UploadedDate,
		string(doc.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetDocumentByID retrieves a document by ID
func (r *DocumentRepository) GetDocumentByID(documentID string) (*models.VerificationDocument, error) {
	query := `
		SELECT id, parent_id, document_type, document_url, uploaded_date, status
		FROM verification_documents WHERE id = ?
	`
	doc := &models.VerificationDocument{}
	var status string
	err := r.db.QueryRow(query, documentID).Scan(
		&doc.ID,
		&doc.ParentID,
		&doc.DocumentType,
		&doc.DocumentURL,
		&doc.UploadedDate,
		&status,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc.Status = models.VerificationStatus(status)
	return doc, nil
}

// GetParentDocuments retrieves all documents uploaded by a parent
func (r *DocumentRepository) GetParentDocuments(parentID string) ([]models.VerificationDocument, error) {
	query := `
		SELECT id, parent_id, document_type, document_url, uploaded_date, status
		FROM verification_documents
		WHERE parent_id = ?
		ORDER BY uploaded_date ASC
	`
	rows, err := r.db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []models.VerificationDocument
	for rows.Next() {
		var doc models.VerificationDocument
		var status string
		if err := rows.Scan(
			&doc.ID,
			&doc.ParentID,
			&doc.DocumentType,
			&doc.DocumentURL,
			&doc.UploadedDate,
			&status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc.Status = models.VerificationStatus(status)
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateDocumentStatus records a review decision on a document
func (r *DocumentRepository) UpdateDocumentStatus(documentID string, status models.VerificationStatus) error {
	query := "UPDATE verification_documents SET status = ? WHERE id = ?"
	_, err := r.db.Exec(query, string(status), documentID)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	return nil
}
