package storefront

// GraphQL documents sent to the Storefront API.

const moneyFragment = `
fragment Money on MoneyV2 {
  amount
  currencyCode
}`

const imageFragment = `
fragment Image on Image {
  id
  url
  altText
  width
  height
}`

const menuItemFragment = `
fragment MenuItem on MenuItem {
  id
  resourceId
  tags
  title
  type
  url
}`

const productItemFragment = `
fragment ProductItem on Product {
  id
  title
  handle
  category { name }
  tags
  availableForSale
  featuredImage { ...Image }
  priceRange {
    minVariantPrice { ...Money }
    maxVariantPrice { ...Money }
  }
}`

const cartFragment = `
fragment CartLine on CartLine {
  id
  quantity
  cost {
    totalAmount { ...Money }
    amountPerQuantity { ...Money }
    compareAtAmountPerQuantity { ...Money }
  }
  merchandise {
    ... on ProductVariant {
      id
      title
      availableForSale
      price { ...Money }
      image { ...Image }
      selectedOptions { name value }
      product { id title handle vendor }
    }
  }
}
fragment Cart on Cart {
  id
  checkoutUrl
  totalQuantity
  note
  cost {
    subtotalAmount { ...Money }
    totalAmount { ...Money }
    totalTaxAmount { ...Money }
  }
  lines(first: 100) {
    nodes { ...CartLine }
  }
}`

const headerQuery = `
query Header($headerMenuHandle: String!) {
  shop {
    id
    name
    description
    primaryDomain { url }
  }
  menu(handle: $headerMenuHandle) {
    id
    items {
      ...MenuItem
      items { ...MenuItem }
    }
  }
}` + menuItemFragment

const footerQuery = `
query Footer($footerMenuHandle: String!) {
  menu(handle: $footerMenuHandle) {
    id
    items {
      ...MenuItem
      items { ...MenuItem }
    }
  }
}` + menuItemFragment

const featuredCollectionQuery = `
query FeaturedCollection {
  collections(first: 1, sortKey: UPDATED_AT, reverse: true) {
    nodes {
      id
      title
      handle
      image { ...Image }
    }
  }
}` + imageFragment

const recommendedProductsQuery = `
query RecommendedProducts($first: Int!) {
  products(first: $first, sortKey: UPDATED_AT, reverse: true) {
    nodes { ...ProductItem }
  }
}` + productItemFragment + imageFragment + moneyFragment

const predictiveSearchQuery = `
query PredictiveSearch($term: String!, $limit: Int!, $limitScope: PredictiveSearchLimitScope!) {
  predictiveSearch(
    limit: $limit
    limitScope: $limitScope
    query: $term
    types: [ARTICLE, COLLECTION, PAGE, PRODUCT, QUERY]
  ) {
    articles {
      id
      title
      handle
      trackingParameters
      blog { handle }
      image { ...Image }
    }
    collections {
      id
      title
      handle
      trackingParameters
      image { ...Image }
    }
    pages {
      id
      title
      handle
      trackingParameters
    }
    products {
      id
      title
      handle
      trackingParameters
      selectedOrFirstAvailableVariant {
        image { ...Image }
        price { ...Money }
      }
    }
    queries {
      text
      styledText
      trackingParameters
    }
  }
}` + imageFragment + moneyFragment

const searchProductsQuery = `
query RegularSearch($term: String!, $first: Int, $last: Int, $startCursor: String, $endCursor: String) {
  products: search(
    query: $term
    types: [PRODUCT]
    unavailableProducts: HIDE
    first: $first
    last: $last
    before: $startCursor
    after: $endCursor
  ) {
    nodes {
      ... on Product { ...ProductItem }
    }
    pageInfo {
      hasNextPage
      hasPreviousPage
      startCursor
      endCursor
    }
  }
}` + productItemFragment + imageFragment + moneyFragment

const cartQuery = `
query Cart($cartId: ID!) {
  cart(id: $cartId) { ...Cart }
}` + cartFragment + imageFragment + moneyFragment

const cartCreateMutation = `
mutation CartCreate($lines: [CartLineInput!]) {
  cartCreate(input: { lines: $lines }) {
    cart { ...Cart }
    userErrors { code field message }
  }
}` + cartFragment + imageFragment + moneyFragment

const cartLinesAddMutation = `
mutation CartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { ...Cart }
    userErrors { code field message }
  }
}` + cartFragment + imageFragment + moneyFragment

const cartLinesUpdateMutation = `
mutation CartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart { ...Cart }
    userErrors { code field message }
  }
}` + cartFragment + imageFragment + moneyFragment

const cartLinesRemoveMutation = `
mutation CartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart { ...Cart }
    userErrors { code field message }
  }
}` + cartFragment + imageFragment + moneyFragment
