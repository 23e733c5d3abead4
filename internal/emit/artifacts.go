// Package emit writes the TypeScript artifacts that accompany a generated
// catalog: the type definitions and the Next.js route handlers that serve the
// catalog JSON from the storefront.
package emit

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"doorforge/internal/fileutil"
)

// Inputs carries everything the artifact templates need. CategoriesJSON is
// the indented JSON encoding of the category configuration, embedded verbatim
// into the generated interfaces file.
type Inputs struct {
	OutputDir      string
	APIDir         string
	CategoryKeys   []string
	CategoriesJSON []byte
	GeneratedAt    time.Time
}

// WriteArtifacts renders all TypeScript artifacts and returns how many files
// were written.
func WriteArtifacts(in Inputs) (int, error) {
	written := 0

	interfaces, err := renderInterfaces(in)
	if err != nil {
		return written, err
	}
	if err := fileutil.WriteFileAtomic(filepath.Join(in.OutputDir, "product-interfaces.ts"), interfaces, 0o644); err != nil {
		return written, fmt.Errorf("write product interfaces: %w", err)
	}
	written++

	if err := fileutil.WriteFileAtomic(filepath.Join(in.APIDir, "route.ts"), []byte(listRoute), 0o644); err != nil {
		return written, fmt.Errorf("write products route: %w", err)
	}
	written++

	if err := fileutil.WriteFileAtomic(filepath.Join(in.APIDir, "[slug]", "route.ts"), []byte(detailRoute), 0o644); err != nil {
		return written, fmt.Errorf("write product detail route: %w", err)
	}
	written++

	return written, nil
}

func renderInterfaces(in Inputs) ([]byte, error) {
	quoted := make([]string, 0, len(in.CategoryKeys))
	for _, key := range in.CategoryKeys {
		quoted = append(quoted, "'"+key+"'")
	}

	var buf bytes.Buffer
	err := interfacesTemplate.Execute(&buf, map[string]any{
		"GeneratedAt":    in.GeneratedAt.UTC().Format(time.RFC3339),
		"CategoryUnion":  strings.Join(quoted, " | "),
		"CategoriesJSON": string(in.CategoriesJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("render product interfaces: %w", err)
	}
	return buf.Bytes(), nil
}

var interfacesTemplate = template.Must(template.New("interfaces").Parse(`// Generated TypeScript interfaces for PG Closets products
// Auto-generated on {{.GeneratedAt}}

export interface Product {
  id: string;
  slug: string;
  name: string;
  category: ProductCategory;
  description: string;
  price: number;
  sale_price?: number;
  currency: string;
  tax_rate: number;
  images: ProductImages;
  features: string[];
  specifications: Record<string, any>;
  availability: ProductAvailability;
  seo: ProductSEO;
  created_at: string;
  updated_at: string;
  source: ProductSource;
}

export interface ProductImages {
  main: string;
  gallery: string[];
  optimized: {
    webp: Record<string, string>;
    avif: Record<string, string>;
    jpeg: Record<string, string>;
  };
}

export interface ProductAvailability {
  in_stock: boolean;
  quantity: number;
  lead_time: number;
}

export interface ProductSEO {
  title: string;
  description: string;
  keywords: string;
}

export interface ProductSource {
  harvested_from: string;
  original_handle: string;
  generation_method: string;
}

export type ProductCategory = {{.CategoryUnion}};

export interface CategoryConfig {
  name: string;
  description: string;
  price_range: [number, number];
  features: string[];
}

export const CATEGORIES: Record<ProductCategory, CategoryConfig> = {{.CategoriesJSON}};
`))

const listRoute = `import { NextRequest, NextResponse } from 'next/server';
import productsData from '@/lib/generated/products-database.json';
import type { Product } from '@/lib/generated/product-interfaces';

const products: Product[] = productsData.products;

export async function GET(request: NextRequest) {
  const { searchParams } = new URL(request.url);
  const category = searchParams.get('category');
  const search = searchParams.get('search');
  const limit = parseInt(searchParams.get('limit') || '50');
  const offset = parseInt(searchParams.get('offset') || '0');

  let filteredProducts = products;

  if (category) {
    filteredProducts = filteredProducts.filter(p => p.category === category);
  }

  if (search) {
    const searchLower = search.toLowerCase();
    filteredProducts = filteredProducts.filter(p =>
      p.name.toLowerCase().includes(searchLower) ||
      p.description.toLowerCase().includes(searchLower) ||
      p.features.some(f => f.toLowerCase().includes(searchLower))
    );
  }

  const total = filteredProducts.length;
  const paginatedProducts = filteredProducts.slice(offset, offset + limit);

  return NextResponse.json({
    products: paginatedProducts,
    pagination: {
      total,
      limit,
      offset,
      has_more: offset + limit < total
    },
    metadata: {
      generated_at: productsData.metadata.generated_at,
      total_products: productsData.metadata.total_products
    }
  });
}
`

const detailRoute = `import { NextRequest, NextResponse } from 'next/server';
import productsData from '@/lib/generated/products-database.json';
import type { Product } from '@/lib/generated/product-interfaces';

const products: Product[] = productsData.products;

export async function GET(
  request: NextRequest,
  { params }: { params: { slug: string } }
) {
  const product = products.find(p => p.slug === params.slug);

  if (!product) {
    return NextResponse.json(
      { error: 'Product not found' },
      { status: 404 }
    );
  }

  const relatedProducts = products
    .filter(p => p.category === product.category && p.id !== product.id)
    .slice(0, 4);

  return NextResponse.json({
    product,
    related_products: relatedProducts
  });
}
`
